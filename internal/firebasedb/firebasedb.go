package firebasedb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

// ErrNotFound báo hiệu node được yêu cầu không tồn tại trong Realtime Database.
var ErrNotFound = errors.New("record not found")

// Database là mặt cắt của Realtime Database mà hệ thống này cần:
// đọc đơn hàng, đọc và xóa FCM token của người dùng.
type Database interface {
	GetOrder(ctx context.Context, userID, orderID string) (*OrderRecord, error)
	GetDeviceToken(ctx context.Context, userID string) (string, error)
	DeleteDeviceToken(ctx context.Context, userID string) error
}

type Client struct {
	db *db.Client
}

func NewClient(ctx context.Context, app *firebase.App) (Database, error) {
	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime database client: %w", err)
	}

	return &Client{db: dbClient}, nil
}

func orderPath(userID, orderID string) string {
	return fmt.Sprintf("website_data/%s/orders/%s", userID, orderID)
}

func deviceTokenPath(userID string) string {
	return fmt.Sprintf("nguoidung/%s/fcmToken", userID)
}

func (c *Client) GetOrder(ctx context.Context, userID, orderID string) (*OrderRecord, error) {
	var order *OrderRecord
	if err := c.db.NewRef(orderPath(userID, orderID)).Get(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to read order %s: %w", orderID, err)
	}

	// Node không tồn tại thì giá trị trả về là null
	if order == nil {
		return nil, ErrNotFound
	}

	return order, nil
}

func (c *Client) GetDeviceToken(ctx context.Context, userID string) (string, error) {
	var token string
	if err := c.db.NewRef(deviceTokenPath(userID)).Get(ctx, &token); err != nil {
		return "", fmt.Errorf("failed to read fcm token of user %s: %w", userID, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNotFound
	}

	return token, nil
}

func (c *Client) DeleteDeviceToken(ctx context.Context, userID string) error {
	if err := c.db.NewRef(deviceTokenPath(userID)).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete fcm token of user %s: %w", userID, err)
	}

	return nil
}

package notification

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// ErrTokenNotRegistered báo hiệu FCM token không còn được đăng ký trên thiết bị nào.
// Caller nên xóa token này khỏi Realtime Database.
var ErrTokenNotRegistered = errors.New("fcm token is no longer registered")

// Pusher gửi một push notification đến một thiết bị.
type Pusher interface {
	Send(ctx context.Context, token string, notification Notification) error
}

type PushService struct {
	client *messaging.Client
}

func NewPushService(ctx context.Context, firebaseApp *firebase.App) (*PushService, error) {
	messagingClient, err := firebaseApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm messaging client: %w", err)
	}

	return &PushService{
		client: messagingClient,
	}, nil
}

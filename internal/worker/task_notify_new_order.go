package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/firebasedb"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/notification"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	defaultCustomerName  = "Khách Web"
	defaultCustomerPhone = "N/A"
)

// PayloadNotifyNewOrder chỉ mang định danh của đơn hàng;
// worker sẽ đọc lại bản ghi từ Realtime Database khi xử lý.
type PayloadNotifyNewOrder struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
}

// DistributeTaskNotifyNewOrder đẩy task thông báo đơn hàng mới vào queue.
// Task ID theo đơn hàng để mỗi sự kiện tạo đơn chỉ được xử lý một lần.
// MaxRetry(0) vì gửi thông báo là fire-and-forget, thất bại chỉ ghi log.
func (distributor *RedisTaskDistributor) DistributeTaskNotifyNewOrder(
	ctx context.Context,
	payload *PayloadNotifyNewOrder,
	opts ...asynq.Option,
) (string, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task payload: %w", err)
	}

	taskID := fmt.Sprintf("%s:%s:%s", TaskNotifyNewOrder, payload.UserID, payload.OrderID)
	opts = append(opts,
		asynq.TaskID(taskID),
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(0),
	)

	task := asynq.NewTask(TaskNotifyNewOrder, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("task_id", taskID).
		Str("order_id", payload.OrderID).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Msg("new order notify task enqueued")

	return taskID, nil
}

// ProcessTaskNotifyNewOrder đọc đơn hàng, tra FCM token của chủ shop và gửi thông báo.
func (processor *RedisTaskProcessor) ProcessTaskNotifyNewOrder(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadNotifyNewOrder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	order, err := processor.db.GetOrder(ctx, payload.UserID, payload.OrderID)
	if err != nil {
		if errors.Is(err, firebasedb.ErrNotFound) {
			log.Info().
				Str("order_id", payload.OrderID).
				Msg("order not found, skipping task")
			return nil
		}
		return fmt.Errorf("failed to get order: %w", err)
	}

	// Chỉ thông báo cho đơn hàng vừa được đặt
	if order.Status != firebasedb.OrderStatusNew {
		log.Info().
			Str("order_id", payload.OrderID).
			Str("current_status", order.Status).
			Msg("order status is not newly placed, skipping task")
		return nil
	}

	log.Info().
		Str("order_id", payload.OrderID).
		Str("user_id", payload.UserID).
		Msg("new web order detected")

	customerName, customerPhone := customerDisplayFields(order.CustomerInfo)

	token, err := processor.db.GetDeviceToken(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, firebasedb.ErrNotFound) {
			log.Warn().
				Str("user_id", payload.UserID).
				Msg("no fcm token for user, skipping task")
			return nil
		}
		return fmt.Errorf("failed to get fcm token: %w", err)
	}

	n := notification.NewWebOrderNotification(payload.OrderID, customerName, customerPhone)

	err = processor.pusher.Send(ctx, token, n)
	if err != nil {
		log.Error().Err(err).
			Str("order_id", payload.OrderID).
			Str("token", util.TruncateContent(token, 20)).
			Msg("fcm send failed")

		// Token không còn hợp lệ thì xóa khỏi database, các lỗi khác chỉ ghi log
		if errors.Is(err, notification.ErrTokenNotRegistered) {
			if deleteErr := processor.db.DeleteDeviceToken(ctx, payload.UserID); deleteErr != nil {
				log.Error().Err(deleteErr).
					Str("user_id", payload.UserID).
					Msg("failed to delete stale fcm token")
			} else {
				log.Info().
					Str("user_id", payload.UserID).
					Msg("stale fcm token deleted")
			}
		}

		return nil
	}

	log.Info().
		Str("order_id", payload.OrderID).
		Msg("new order notification sent")

	return nil
}

// customerDisplayFields lấy tên và số điện thoại hiển thị,
// thay bằng giá trị mặc định khi thiếu hoặc rỗng sau khi trim.
func customerDisplayFields(info *firebasedb.CustomerInfo) (name, phone string) {
	name = defaultCustomerName
	phone = defaultCustomerPhone

	if info == nil {
		return name, phone
	}

	if trimmed := strings.TrimSpace(info.Name); trimmed != "" {
		name = trimmed
	}
	if trimmed := strings.TrimSpace(info.Phone); trimmed != "" {
		phone = trimmed
	}

	return name, phone
}

package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskNotifyNewOrder = "order:notify"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskNotifyNewOrder(ctx context.Context, payload *PayloadNotifyNewOrder, opts ...asynq.Option) (taskID string, err error)
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}

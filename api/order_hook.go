package api

import (
	"errors"
	"net/http"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type orderCreatedRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	OrderID string `json:"order_id" binding:"required"`
}

type orderCreatedResponse struct {
	TaskID string `json:"task_id"`
}

// handleOrderCreated nhận sự kiện tạo đơn hàng và đẩy task gửi thông báo vào queue.
// Webhook chỉ mang định danh đơn hàng, worker sẽ đọc lại bản ghi từ database
// nên request giả mạo không thể dựng nội dung thông báo.
func (server *Server) handleOrderCreated(ctx *gin.Context) {
	var req orderCreatedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payload := &worker.PayloadNotifyNewOrder{
		UserID:  req.UserID,
		OrderID: req.OrderID,
	}

	taskID, err := server.taskDistributor.DistributeTaskNotifyNewOrder(ctx, payload)
	if err != nil {
		// Sự kiện trùng (cùng một đơn hàng) đã được nhận trước đó
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			ctx.JSON(http.StatusAccepted, orderCreatedResponse{
				TaskID: worker.TaskNotifyNewOrder + ":" + req.UserID + ":" + req.OrderID,
			})
			return
		}

		log.Err(err).Str("order_id", req.OrderID).Msg("failed to enqueue order notify task")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusAccepted, orderCreatedResponse{TaskID: taskID})
}

type orderNotifyStatusResponse struct {
	TaskID    string `json:"task_id"`
	Queue     string `json:"queue"`
	State     string `json:"state"`
	LastError string `json:"last_error,omitempty"`
}

func (server *Server) getOrderNotifyStatus(ctx *gin.Context) {
	taskID := ctx.Param("taskID")

	info, err := server.taskInspector.GetTaskInfo(ctx, worker.QueueCritical, taskID)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Str("task_id", taskID).Msg("failed to get task info")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orderNotifyStatusResponse{
		TaskID:    info.ID,
		Queue:     info.Queue,
		State:     info.State.String(),
		LastError: info.LastErr,
	})
}

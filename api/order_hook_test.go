package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

type fakeTaskDistributor struct {
	err      error
	payloads []*worker.PayloadNotifyNewOrder
}

func (f *fakeTaskDistributor) DistributeTaskNotifyNewOrder(ctx context.Context, payload *worker.PayloadNotifyNewOrder, opts ...asynq.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.payloads = append(f.payloads, payload)
	return worker.TaskNotifyNewOrder + ":" + payload.UserID + ":" + payload.OrderID, nil
}

type fakeTaskInspector struct {
	info *asynq.TaskInfo
	err  error
}

func (f *fakeTaskInspector) GetTaskInfo(ctx context.Context, queue, taskID string) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func TestHandleOrderCreated(t *testing.T) {
	distributor := &fakeTaskDistributor{}
	server := newTestServer(t, &Server{taskDistributor: distributor})

	body := `{"user_id": "user1", "order_id": "order1"}`
	recorder := performRequest(t, server, http.MethodPost, "/v1/hooks/orders", body)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var resp orderCreatedResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "order:notify:user1:order1", resp.TaskID)

	require.Len(t, distributor.payloads, 1)
	require.Equal(t, "user1", distributor.payloads[0].UserID)
	require.Equal(t, "order1", distributor.payloads[0].OrderID)
}

func TestHandleOrderCreatedMissingFields(t *testing.T) {
	distributor := &fakeTaskDistributor{}
	server := newTestServer(t, &Server{taskDistributor: distributor})

	recorder := performRequest(t, server, http.MethodPost, "/v1/hooks/orders", `{"user_id": "user1"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Empty(t, distributor.payloads)
}

func TestHandleOrderCreatedDuplicateEvent(t *testing.T) {
	distributor := &fakeTaskDistributor{err: asynq.ErrTaskIDConflict}
	server := newTestServer(t, &Server{taskDistributor: distributor})

	body := `{"user_id": "user1", "order_id": "order1"}`
	recorder := performRequest(t, server, http.MethodPost, "/v1/hooks/orders", body)

	// Sự kiện trùng vẫn trả 202 để phía gửi không retry
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var resp orderCreatedResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "order:notify:user1:order1", resp.TaskID)
}

func TestGetOrderNotifyStatus(t *testing.T) {
	inspector := &fakeTaskInspector{
		info: &asynq.TaskInfo{
			ID:    "order:notify:user1:order1",
			Queue: worker.QueueCritical,
			Type:  worker.TaskNotifyNewOrder,
			State: asynq.TaskStateCompleted,
		},
	}
	server := newTestServer(t, &Server{taskInspector: inspector})

	recorder := performRequest(t, server, http.MethodGet, "/v1/hooks/orders/order:notify:user1:order1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp orderNotifyStatusResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "order:notify:user1:order1", resp.TaskID)
	require.Equal(t, worker.QueueCritical, resp.Queue)
	require.Equal(t, "completed", resp.State)
}

func TestGetOrderNotifyStatusNotFound(t *testing.T) {
	inspector := &fakeTaskInspector{err: asynq.ErrTaskNotFound}
	server := newTestServer(t, &Server{taskInspector: inspector})

	recorder := performRequest(t, server, http.MethodGet, "/v1/hooks/orders/unknown", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sayur/config"
	"sayur/internal/domain/constants"
	"sayur/internal/domain/service"
	mockUsecase "sayur/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockOrderUsecase) {
	orderSvc := mockUsecase.NewMockOrderUsecase(t)
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   logger,
		OrderSvc: orderSvc,
	})

	return handler, orderSvc
}

func pushRequest(t *testing.T, event *service.OrderCreatedEvent, attributes map[string]string) *http.Request {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = "m-1"
	pushMsg.Subscription = "projects/local/subscriptions/order-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_ConfirmsOrder(t *testing.T) {
	handler, orderSvc := createTestPushHandler(t)

	orderID := uuid.New()
	event := &service.OrderCreatedEvent{
		OrderID:     orderID.String(),
		OrderNumber: "GS-7K2PQ9XA",
		UserID:      uuid.New().String(),
		TotalAmount: "54000",
	}

	orderSvc.EXPECT().
		ConfirmOrder(mock.Anything, orderID).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, map[string]string{"request_id": uuid.New().String()}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_ConfirmFailureIsRetried(t *testing.T) {
	handler, orderSvc := createTestPushHandler(t)

	orderID := uuid.New()
	event := &service.OrderCreatedEvent{
		OrderID:     orderID.String(),
		OrderNumber: "GS-7K2PQ9XA",
	}

	orderSvc.EXPECT().
		ConfirmOrder(mock.Anything, orderID).
		Return(assert.AnError)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedOrderIDIsDropped(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	event := &service.OrderCreatedEvent{
		OrderID:     "not-a-uuid",
		OrderNumber: "GS-7K2PQ9XA",
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	// Acked with 200 so Pub/Sub does not redeliver a poison message.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m-1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetryableError(t *testing.T) {
	inner := assert.AnError
	err := newRetryableError(inner)

	assert.True(t, isRetryableError(err))
	assert.ErrorIs(t, err, inner)
	assert.False(t, isRetryableError(inner))
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/flosclinic/attendance-bot/internal/domain/attendance"
	"github.com/flosclinic/attendance-bot/internal/pkg/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	mu       sync.Mutex
	messages []attendance.IncomingMessage
}

func (f *fakeAttendanceService) HandleTextMessage(_ context.Context, msg attendance.IncomingMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func postWebhook(t *testing.T, handler WebhookHandler, payload line.WebhookRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)
	return rec
}

func TestWebhookHandler_DispatchesTextEvents(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewWebhookHandler(svc)

	rec := postWebhook(t, handler, line.WebhookRequest{Events: []line.Event{
		{
			Type:       line.EventTypeMessage,
			ReplyToken: "token-1",
			Source:     line.Source{Type: line.SourceTypeGroup, UserID: "U1", GroupID: "C1"},
			Message:    &line.Message{Type: line.MessageTypeText, Text: "打卡上班"},
		},
		{
			Type:       line.EventTypeMessage,
			ReplyToken: "token-2",
			Source:     line.Source{Type: line.SourceTypeRoom, UserID: "U2", RoomID: "R1"},
			Message:    &line.Message{Type: line.MessageTypeText, Text: "查詢打卡"},
		},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.messages, 2)

	byToken := map[string]attendance.IncomingMessage{}
	for _, msg := range svc.messages {
		byToken[msg.ReplyToken] = msg
	}
	assert.Equal(t, "C1", byToken["token-1"].ChannelID)
	assert.Equal(t, "打卡上班", byToken["token-1"].Text)
	assert.Equal(t, "R1", byToken["token-2"].ChannelID)
	assert.Equal(t, "U2", byToken["token-2"].LineUserID)
}

func TestWebhookHandler_DirectChatHasEmptyChannelID(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewWebhookHandler(svc)

	rec := postWebhook(t, handler, line.WebhookRequest{Events: []line.Event{
		{
			Type:       line.EventTypeMessage,
			ReplyToken: "token-1",
			Source:     line.Source{Type: line.SourceTypeUser, UserID: "U1"},
			Message:    &line.Message{Type: line.MessageTypeText, Text: "打卡上班"},
		},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.messages, 1)
	assert.Empty(t, svc.messages[0].ChannelID)
}

func TestWebhookHandler_IgnoresNonTextAndFollowEvents(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewWebhookHandler(svc)

	rec := postWebhook(t, handler, line.WebhookRequest{Events: []line.Event{
		{
			Type:   line.EventTypeMessage,
			Source: line.Source{Type: line.SourceTypeGroup, UserID: "U1", GroupID: "C1"},
			Message: &line.Message{
				Type: "sticker",
			},
		},
		{Type: line.EventTypeFollow, Source: line.Source{Type: line.SourceTypeUser, UserID: "U1"}},
		{Type: line.EventTypeUnfollow, Source: line.Source{Type: line.SourceTypeUser, UserID: "U1"}},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.messages)
}

func TestWebhookHandler_EmptyBatch(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewWebhookHandler(svc)

	rec := postWebhook(t, handler, line.WebhookRequest{})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_MalformedPayload(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewWebhookHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.messages)
}

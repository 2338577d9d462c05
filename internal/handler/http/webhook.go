package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/flosclinic/attendance-bot/internal/domain/attendance"
	"github.com/flosclinic/attendance-bot/internal/handler/http/response"
	"github.com/flosclinic/attendance-bot/internal/pkg/line"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type webhookHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewWebhookHandler(attendanceService attendance.AttendanceService) WebhookHandler {
	return &webhookHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Receive implements WebhookHandler. A delivery may carry several
// independent events; they are dispatched concurrently and the batch
// succeeds once all of them have been handled. Per-event failures are
// logged, never surfaced as a batch failure.
func (h *webhookHandlerImpl) Receive(w http.ResponseWriter, r *http.Request) {
	var req line.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode webhook payload", "error", err)
		response.BadRequest(w, "Invalid webhook payload", nil)
		return
	}

	var wg sync.WaitGroup
	for _, event := range req.Events {
		wg.Add(1)
		go func(event line.Event) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					slog.Error("panic while handling webhook event", "event_type", event.Type, "panic", p)
				}
			}()
			h.handleEvent(r.Context(), event)
		}(event)
	}
	wg.Wait()

	response.Success(w, nil)
}

func (h *webhookHandlerImpl) handleEvent(ctx context.Context, event line.Event) {
	switch event.Type {
	case line.EventTypeMessage:
		if event.Message == nil || event.Message.Type != line.MessageTypeText {
			slog.Debug("ignoring non-text message event")
			return
		}
		if event.Source.UserID == "" {
			slog.Warn("message event without user id")
			return
		}
		msg := attendance.IncomingMessage{
			ReplyToken: event.ReplyToken,
			LineUserID: event.Source.UserID,
			ChannelID:  event.Source.ChannelID(),
			Text:       event.Message.Text,
		}
		if err := h.attendanceService.HandleTextMessage(ctx, msg); err != nil {
			slog.Error("failed to handle text message", "error", err)
		}
	case line.EventTypeFollow:
		slog.Info("user followed", "user_id", event.Source.UserID)
	case line.EventTypeUnfollow:
		slog.Info("user unfollowed", "user_id", event.Source.UserID)
	default:
		slog.Debug("unhandled event type", "event_type", event.Type)
	}
}

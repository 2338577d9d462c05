package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flosclinic/attendance-bot/internal/domain/booking"
	"github.com/flosclinic/attendance-bot/internal/handler/http/response"
)

type BookingHandler interface {
	SendConfirmation(w http.ResponseWriter, r *http.Request)
}

type bookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &bookingHandlerImpl{
		bookingService: bookingService,
	}
}

// SendConfirmation implements BookingHandler. Validation happens before any
// outbound message is attempted.
func (h *bookingHandlerImpl) SendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req booking.ConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode booking confirmation payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.bookingService.SendConfirmation(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking confirmation sent", nil)
}

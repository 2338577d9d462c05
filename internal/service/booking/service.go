package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flosclinic/attendance-bot/internal/domain/booking"
	"github.com/flosclinic/attendance-bot/internal/pkg/line"
)

// MessagePusher is the channel-targeted send operation of the messaging
// gateway.
type MessagePusher interface {
	PushFlex(ctx context.Context, to string, message line.FlexMessage) error
}

type BookingServiceImpl struct {
	messenger MessagePusher
}

func NewBookingService(messenger MessagePusher) booking.BookingService {
	return &BookingServiceImpl{messenger: messenger}
}

// SendConfirmation implements booking.BookingService.
func (s *BookingServiceImpl) SendConfirmation(ctx context.Context, req booking.ConfirmationRequest) error {
	message := buildConfirmationMessage(req)

	if err := s.messenger.PushFlex(ctx, req.ChannelID, message); err != nil {
		slog.Error("failed to push booking confirmation", "channel_id", req.ChannelID, "error", err)
		return fmt.Errorf("%w: %v", booking.ErrDeliveryFailed, err)
	}

	slog.Info("booking confirmation sent", "channel_id", req.ChannelID, "customer", req.CustomerName)
	return nil
}

func buildConfirmationMessage(req booking.ConfirmationRequest) line.FlexMessage {
	b := newConfirmationBuilder(req.CustomerName)
	b.row("姓名", req.CustomerName, true)
	b.row("電話", req.CustomerPhone, false)
	b.row("日期", req.AppointmentDate, true)
	b.row("時間", req.AppointmentTime, true)
	b.row("療程", req.Treatment, false)
	b.optionalRow("醫師", req.Doctor)
	b.optionalRow("備註", req.Notes)
	return b.build()
}

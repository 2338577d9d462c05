package booking

import "context"

type BookingService interface {
	// SendConfirmation formats the booking as a flex message and pushes it
	// into the organization's channel. Delivery failure propagates to the
	// caller; there is no retry here.
	SendConfirmation(ctx context.Context, req ConfirmationRequest) error
}

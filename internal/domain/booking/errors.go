package booking

import "errors"

var (
	ErrDeliveryFailed = errors.New("failed to deliver booking confirmation")
)

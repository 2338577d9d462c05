package attendance

import (
	"context"
)

// AttendanceService dispatches an inbound text message to the matching
// attendance command and replies through the messaging gateway.
type AttendanceService interface {
	// HandleTextMessage runs the full chain for one message: resolve the
	// organization, resolve the employee, apply the command's state rule,
	// and send the reply. Reply delivery failures are logged and swallowed;
	// the returned error covers only unexpected dispatch failures.
	HandleTextMessage(ctx context.Context, msg IncomingMessage) error
}

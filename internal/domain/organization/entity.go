package organization

import "time"

// Organization is a tenant (a clinic) bound to exactly one LINE group or
// room. Rows are created out-of-band by operations; this service only reads
// them.
type Organization struct {
	ID            int64
	Name          string
	LineChannelID string
	CreatedAt     time.Time
}

package organization

import "context"

type OrganizationRepository interface {
	// GetByChannelID resolves the organization bound to a LINE group or
	// room. Returns ErrOrganizationNotFound when the channel is unknown.
	GetByChannelID(ctx context.Context, channelID string) (Organization, error)
}

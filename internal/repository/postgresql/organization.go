package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flosclinic/attendance-bot/internal/domain/organization"
	"github.com/flosclinic/attendance-bot/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// GetByChannelID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByChannelID(ctx context.Context, channelID string) (organization.Organization, error) {
	query := `
		SELECT id, name, line_channel_id, created_at
		FROM organizations
		WHERE line_channel_id = $1
	`

	var org organization.Organization
	err := o.db.QueryRow(ctx, query, channelID).Scan(
		&org.ID, &org.Name, &org.LineChannelID, &org.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization by channel id: %w", err)
	}

	return org, nil
}

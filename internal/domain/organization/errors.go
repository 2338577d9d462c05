package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found for channel")
)

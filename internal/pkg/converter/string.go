package converter

import (
	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/apperror"
)

// ParseID parses a path or query identifier, reporting a validation error naming field
func ParseID(field, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, apperror.Validation("%s is required", field)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.Validation("%s must be a valid UUID", field)
	}
	return id, nil
}

package board

import (
	"strings"

	"github.com/binharademo/trelloclone/internal/domain"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

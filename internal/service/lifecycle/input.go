package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	ListID      uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	Actor       domain.Actor
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Title, i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for editing a card. Title is always
// replaced; Description and DueDate are replaced as given, nil clears them.
// ListID, when set, must name the card's current list.
type UpdateCardInput struct {
	CardID          uuid.UUID
	Title           string
	Description     *string
	DueDate         *time.Time
	ListID          *uuid.UUID
	ExpectedVersion *int64
	Actor           domain.Actor
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Title, i.Description)...)
	errs = append(errs, validateVersion(i.ExpectedVersion)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveCardInput holds the parameters for moving a card to another list.
type MoveCardInput struct {
	CardID          uuid.UUID
	ToListID        uuid.UUID
	ExpectedVersion *int64
	Actor           domain.Actor
}

// Validate checks all fields and collects all errors.
func (i MoveCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ToListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_list_id", Message: "required"})
	}
	errs = append(errs, validateVersion(i.ExpectedVersion)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID
	Actor  domain.Actor
}

// Validate checks all fields.
func (i DeleteCardInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

func validateContent(title string, description *string) []domain.FieldError {
	var errs []domain.FieldError

	t := strings.TrimSpace(title)
	if t == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(t) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if description != nil && len(strings.TrimSpace(*description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

func validateVersion(v *int64) []domain.FieldError {
	if v != nil && *v < 1 {
		return []domain.FieldError{{Field: "expected_version", Message: "must be positive"}}
	}
	return nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// ValidateToken checks an access token and returns the user id and display
// name it carries. Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, name, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err)
		return uuid.Nil, "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return userID, name, nil
}

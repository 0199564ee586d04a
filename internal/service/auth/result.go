package auth

import "github.com/binharademo/trelloclone/internal/domain"

// AuthResult is returned by Register and LoginWithPassword.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

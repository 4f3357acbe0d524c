package ports

// TokenClaims is the identity a verified token attests to.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verify is binary: it returns the claims or domain.ErrInvalidToken, without
// distinguishing expired from tampered tokens.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

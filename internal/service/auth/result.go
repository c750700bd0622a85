package auth

// TokenType is the only token type issued.
const TokenType = "bearer"

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

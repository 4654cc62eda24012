package models

// Credentials carries the username/password pair used for the OAuth password
// grant. Never logged.
type Credentials struct {
	Username string
	Password string
}

// Session is the result of a successful authentication. The bearer token is
// immutable for the process lifetime: there is no refresh flow, and an
// authorization failure after token acquisition is terminal. ExpiresIn is
// informational only.
type Session struct {
	Token     string
	TokenType string
	ExpiresIn int64
	BaseURL   string
	VerifySSL bool
}

// TokenResponse is the body of a successful POST /oauth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// OAuthError is the body of a failed POST /oauth/token.
type OAuthError struct {
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

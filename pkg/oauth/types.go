package oauth

// TokenRequest is the decoded body of a token request.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Scope        string `json:"scope"`
}

// Valid reports whether the request can be granted a token.
func (r TokenRequest) Valid() bool {
	return r.GrantType == GrantTypeClientCredentials && r.ClientID != "" && r.ClientSecret != ""
}

// TokenResponse represents an OAuth token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// ErrorResponse represents an OAuth error response
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// OAuth error codes
const (
	ErrInvalidRequest = "invalid_request"
	ErrServerError    = "server_error"
)

// Grant types
const (
	GrantTypeClientCredentials = "client_credentials"
)

// TokenTypeBearer is the token_type of every issued token.
const TokenTypeBearer = "Bearer"

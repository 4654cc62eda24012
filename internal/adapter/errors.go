package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers
// discriminate with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrNotModified         = errors.New("not modified")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoAccessToken is returned by Authenticate when the token endpoint
	// answers 2xx but the body carries no access_token field.
	ErrNoAccessToken = errors.New("token response missing access token")

	// ErrTransport marks a request that failed before any HTTP status was
	// received (DNS failure, connection refused, timeout). The polling
	// stage treats it as transient.
	ErrTransport = errors.New("transport error")
)

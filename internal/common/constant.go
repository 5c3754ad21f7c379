package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests once a credential exists.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix prefixes the token value in the authorization header.
const BearerPrefix = "Bearer "

// Classification values returned by the verification service. The service
// may return values outside this set; consumers must tolerate that.
const (
	ClassificationReal       = "Real"
	ClassificationMisleading = "Misleading"
	ClassificationFake       = "Fake"
)

package domain

// CredentialTTLHours is the fixed lifetime of an identity credential.
const CredentialTTLHours = 24

// TokenIssuer issues signed identity credentials (e.g. JWT) binding an email
// with a fixed 24-hour expiration. Issuing is purely functional; the caller
// is responsible for transport (the HTTP layer sets it as a cookie).
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// TokenVerifier statelessly verifies a credential and returns the embedded
// identity email. Invalid signatures and expired credentials fail.
type TokenVerifier interface {
	Verify(token string) (email string, err error)
}

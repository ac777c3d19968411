package interfaces

import "context"

// Session identifies the authenticated back-office user behind a request.
type Session struct {
	UserID string
	Email  string
}

// IIdentityProvider verifies a bearer token with the external identity
// service and resolves the owning user. Writes must fail before touching
// the store when no valid session exists.
type IIdentityProvider interface {
	VerifySession(ctx context.Context, token string) (Session, error)
}

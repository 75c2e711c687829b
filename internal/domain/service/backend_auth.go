package service

// AuthTokenCarrier is the mutable default-header state of the backend client.
// The session manager sets the bearer token after login and clears it on
// logout; every backend request picks up whatever is currently set.
type AuthTokenCarrier interface {
	SetToken(token string)
	ClearToken()
}

// UnauthorizedWatcher exposes the backend client's global 401 hook. The
// session manager subscribes once at application start; any backend response
// with status 401 invokes the callback (which forces a logout). The returned
// function unsubscribes and is called on application shutdown only.
type UnauthorizedWatcher interface {
	OnUnauthorized(fn func()) (unsubscribe func())
}

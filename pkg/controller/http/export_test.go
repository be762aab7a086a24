package http

var (
	NewSessionCookie        = newSessionCookie
	PanicRecoveryMiddleware = panicRecoveryMiddleware
)

type SessionCookie = sessionCookie

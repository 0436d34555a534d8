package middleware

// contextKey is the type of keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

// loggerCtxKey stores the request-scoped logger in both the Gin and the request context.
const loggerCtxKey = contextKey("logger")

package dal

import "context"

// RequestOptions carries the optional query and body of a gateway call
type RequestOptions struct {
	Query map[string]string
	Body  interface{}
}

// Gateway sends a typed request to the backend and returns its envelope.
// Failures are always *models.Failure of kind transport or remote_rejected.
type Gateway interface {
	Send(ctx context.Context, method, path string, opts RequestOptions) (*Envelope, error)
}

// GatewayFunc adapts a function to the Gateway interface
type GatewayFunc func(ctx context.Context, method, path string, opts RequestOptions) (*Envelope, error)

func (f GatewayFunc) Send(ctx context.Context, method, path string, opts RequestOptions) (*Envelope, error) {
	return f(ctx, method, path, opts)
}

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx so the gateway forwards it
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token attached by WithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

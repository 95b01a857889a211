package context

import (
	"context"

	"github.com/redhat-developer/kexec/pkg/config"
)

type contextKey struct{}

var envConfigKey contextKey

// WithEnvConfig sets the environment configuration in ctx
func WithEnvConfig(ctx context.Context, val config.Configuration) context.Context {
	return context.WithValue(ctx, envConfigKey, val)
}

// GetEnvConfig gets the environment configuration value in ctx.
// This function will panic if the context does not contain the value.
// Use this function only with a context obtained from Complete/Validate/Run/... methods of Runnable interface
func GetEnvConfig(ctx context.Context) config.Configuration {
	value := ctx.Value(envConfigKey)
	if cast, ok := value.(config.Configuration); ok {
		return cast
	}
	panic("GetEnvConfig can be called only after WithEnvConfig has been called")
}

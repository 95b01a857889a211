package exec

import (
	"context"
	"io"
)

type Client interface {
	// ExecuteCommand runs the command described by params in the target pod and reports its output.
	// Non-nil stdout and stderr also receive the output of the command while it is received.
	ExecuteCommand(ctx context.Context, params Params, stdout, stderr io.Writer) (Result, error)
}

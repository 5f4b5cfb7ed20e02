package confirm

import "context"

// Request describes what is being confirmed.
type Request struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

// Gate asks the user to confirm req. It returns true only on an explicit
// yes. A non-nil error means the request was abandoned.
type Gate interface {
	Ask(ctx context.Context, req Request) (bool, error)
}

// GateFunc adapts a function to Gate.
type GateFunc func(ctx context.Context, req Request) (bool, error)

func (f GateFunc) Ask(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

// Always answers every request with v. Useful for non-interactive runs.
func Always(v bool) Gate {
	return GateFunc(func(ctx context.Context, _ Request) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return v, nil
	})
}

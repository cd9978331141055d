package classifier

import (
	"context"
	"fmt"
)

// Options select and configure a backend.
type Options struct {
	Backend string
	Seed    int64
	Remote  RemoteConfig
	Gemini  GeminiConfig
}

// New builds the configured predictor. The returned close function is
// never nil.
func New(ctx context.Context, opts Options) (Predictor, func() error, error) {
	noop := func() error { return nil }

	switch opts.Backend {
	case "", StubName:
		return NewStub(opts.Seed), noop, nil
	case RemoteName:
		p, err := NewRemote(opts.Remote)
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	case GeminiName:
		p, err := NewGemini(ctx, opts.Gemini)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown classifier backend %q", opts.Backend)
	}
}

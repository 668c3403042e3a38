package ocr

import (
	"context"
	"sync"
)

type guarded struct {
	mu    sync.Mutex
	inner Engine
}

// Guard serializes access to a shared engine instance. The one engine built
// at process start is shared by every request goroutine, and engines are not
// required to document concurrency safety, so the guarded wrapper is the only
// legal access path handlers receive.
func Guard(e Engine) Engine {
	return &guarded{inner: e}
}

func (g *guarded) Name() string { return g.inner.Name() }

func (g *guarded) Recognize(ctx context.Context, in Input) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Recognize(ctx, in)
}

package cache

import (
	"context"

	"meetmatch/internal/ports/output"
)

var _ output.ResultsCache = Noop{}

// Noop is used when no Redis URL is configured. Every read misses.
type Noop struct{}

func (Noop) Get(context.Context, string, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, string, []byte) error        { return nil }
func (Noop) Invalidate(context.Context, string) error                 { return nil }

package output

import "context"

// ResultsCache stores rendered results per event. Variant distinguishes the
// locale and ranking depth of one rendering. A miss returns ok == false.
type ResultsCache interface {
	Get(ctx context.Context, eventID, variant string) (data []byte, ok bool, err error)
	Set(ctx context.Context, eventID, variant string, data []byte) error
	Invalidate(ctx context.Context, eventID string) error
}

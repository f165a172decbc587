package orchestrator

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/model"
)

// progressBuffer bounds how far the pipeline may run ahead of a slow consumer.
const progressBuffer = 16

// RunWithProgress runs req and delivers every progress snapshot to fn, in
// order, on a single goroutine. fn has returned for every snapshot before
// RunWithProgress returns. Any Progress channel already set on req is replaced.
func RunWithProgress(ctx context.Context, o *Orchestrator, req Request, fn func(model.Progress)) (*model.GeneratedDocument, error) {
	if fn == nil {
		req.Progress = nil
		return o.Run(ctx, req)
	}

	ch := make(chan model.Progress, progressBuffer)
	delivered := make(chan struct{})
	go func() {
		defer close(delivered)
		for p := range ch {
			fn(p)
		}
	}()

	req.Progress = ch
	doc, err := o.Run(ctx, req)
	close(ch)
	<-delivered
	return doc, err
}

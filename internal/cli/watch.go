package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/planview/pkg/config"
)

// watch calls render every time path changes, until ctx is cancelled.
// Render failures are reported by render itself and do not stop the loop.
func (c *CLI) watch(ctx context.Context, path string, render func(context.Context)) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	printInfo("Watching %s for changes (Ctrl-C to stop)", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-w.Events:
			if !ok {
				return nil
			}
			c.Logger.Debug("input changed", "path", changed)
			render(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("watcher error", "err", err)
		}
	}
}

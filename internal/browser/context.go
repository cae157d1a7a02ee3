// internal/browser/context.go
package browser

import "context"

// CombineContext creates a context derived from primary (which carries the
// CDP target information) that is also canceled when secondary is canceled.
// chromedp operations must run on the context holding the connection, while
// callers control deadlines through their own context; this joins the two
// lifecycles.
func CombineContext(primary, secondary context.Context) (context.Context, context.CancelFunc) {
	combined, cancel := context.WithCancel(primary)
	go func() {
		select {
		case <-secondary.Done():
			cancel()
		case <-combined.Done():
		}
	}()
	return combined, cancel
}

package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// consoleNotifier prints notifications as marked lines and mirrors them to
// the log.
type consoleNotifier struct {
	mu  sync.Mutex
	w   io.Writer
	log logging.Logger
}

func newConsoleNotifier(w io.Writer, logger logging.Logger) *consoleNotifier {
	return &consoleNotifier{w: w, log: logger}
}

func (n *consoleNotifier) Success(msg string) {
	n.print("✔", msg)
	n.log.Info(context.Background(), "notify", "kind", "success", "message", msg)
}

func (n *consoleNotifier) Error(msg string) {
	n.print("✖", msg)
	n.log.Warn(context.Background(), "notify", "kind", "error", "message", msg)
}

func (n *consoleNotifier) print(mark, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "%s %s\n", mark, msg)
}

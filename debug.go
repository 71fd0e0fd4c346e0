package strobe

import (
	"fmt"
	"os"
	"time"
)

// debugf writes one "[strobe]" line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[strobe] "+format+"\n", args...)
}

// debugFrame prints draw timing and counts for the last frame.
func (s *Stage) debugFrame(elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[strobe] draw: %v | pictures: %d | movers: %d | pending tasks: %d\n",
		elapsed, s.drawn, s.overlay.NumChildren(), s.timeline.Pending())
}

// debugMaxChildCount is the child count above which a layer is likely
// leaking nodes.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[strobe] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

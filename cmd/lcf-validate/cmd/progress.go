package cmd

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-isatty"
)

// progressSpinner shows "checking maps" with a done/total counter on stderr
// while a batch runs.
type progressSpinner struct {
	w     io.Writer
	done  atomic.Int64
	total int
	stop  chan struct{}
	exit  chan struct{}
}

// startProgress starts a spinner for total maps. It returns nil when stderr
// is not a terminal or there is only one map.
func startProgress(total int) *progressSpinner {
	if total <= 1 || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	sp := spinner.Line
	frames := sp.Frames
	interval := sp.FPS
	if len(frames) == 0 {
		frames = []string{"-"}
	}
	if interval <= 0 {
		interval = 120 * time.Millisecond
	}

	p := &progressSpinner{
		w:     os.Stderr,
		total: total,
		stop:  make(chan struct{}),
		exit:  make(chan struct{}),
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-p.stop:
				// Clear the line so subsequent output starts cleanly.
				_, _ = fmt.Fprint(p.w, "\r\033[2K")
				close(p.exit)
				return
			case <-ticker.C:
				_, _ = fmt.Fprintf(p.w, "\r%s Checking maps %d/%d", frames[frame%len(frames)], p.done.Load(), p.total)
				frame++
			}
		}
	}()
	return p
}

// Update records progress. It is safe to call from several goroutines and
// on a nil spinner.
func (p *progressSpinner) Update(done, _ int) {
	if p == nil {
		return
	}
	p.done.Store(int64(done))
}

// Stop clears the spinner line.
func (p *progressSpinner) Stop() {
	if p == nil {
		return
	}
	close(p.stop)
	<-p.exit
}

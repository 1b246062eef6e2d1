package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line while an export runs and replaces it with
// a success or failure line carrying the elapsed time, in the same format
// as printSuccess.
type spinner struct {
	w       io.Writer
	message string
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	start   time.Time
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	width int // visible width of the last frame, for clearing
}

// newSpinner creates a spinner writing to w. It stops when ctx is cancelled.
func newSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		w:       w,
		message: message,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// run starts the animation.
func (s *spinner) run() {
	s.start = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

func (s *spinner) draw(frame string) {
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message+" "+s.elapsed().String())
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = lipgloss.Width(line)
	fmt.Fprint(s.w, "\r"+line)
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%*s\r", s.width, "")
		s.width = 0
	}
}

func (s *spinner) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// halt stops the animation once and waits for the line to be cleared.
func (s *spinner) halt() bool {
	first := false
	s.once.Do(func() {
		first = true
		s.cancel()
		<-s.stopped
	})
	return first
}

// done stops the spinner and prints msg with the elapsed time.
func (s *spinner) done(msg string) {
	if s.halt() {
		fmt.Fprintf(s.w, "%s %s %s\n", styleIconSuccess.Render(iconSuccess), msg, StyleDim.Render("("+s.elapsed().String()+")"))
	}
}

// fail stops the spinner and prints msg as an error.
func (s *spinner) fail(msg string) {
	if s.halt() {
		fmt.Fprintf(s.w, "%s %s\n", styleIconError.Render(iconError), msg)
	}
}

// interrupted reports whether the parent context ended the spinner.
func (s *spinner) interrupted() bool {
	return s.parent.Err() != nil
}

// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ProgressBar implements progress bar functionality that must be
// manually managed. That is, Display must be called whenever an updated
// progress bar should be printed. A ProgressBar is safe for concurrent
// use.
type ProgressBar struct {
	mu sync.Mutex

	out   io.Writer
	label string

	// width is the number of characters wide that the bar is drawn
	width int

	// max is the number of times Increment should be called before the
	// progress bar reaches 100%
	max     int
	current int

	startTime time.Time
}

// New returns a new ProgressBar which prints to out, is width
// characters wide, and reaches 100% after max calls to Increment
func New(out io.Writer, label string, width, max int) *ProgressBar {
	if max < 1 {
		max = 1
	}
	return &ProgressBar{
		out:       out,
		label:     label,
		width:     width,
		max:       max,
		startTime: time.Now(),
	}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	p.Add(1)
}

// Add adds n to the internal progress counter, saturating at 100%
func (p *ProgressBar) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current += n
	if p.current > p.max {
		p.current = p.max
	}
}

// Progress returns the fraction of work done
func (p *ProgressBar) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return float64(p.current) / float64(p.max)
}

// String returns the progress bar as a single line
func (p *ProgressBar) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	filled := p.current * p.width / p.max

	var bar strings.Builder
	if p.label != "" {
		bar.WriteString(p.label)
		bar.WriteByte(' ')
	}
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&bar, "| [%.2f%% | %d/%d | elapsed: %v]",
		float64(p.current)/float64(p.max)*100, p.current, p.max,
		time.Since(p.startTime).Truncate(time.Second))

	return bar.String()
}

// Display redraws the progress bar over the current terminal line
func (p *ProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p.String())
}

// Close prints the final state of the progress bar and moves to the
// next line
func (p *ProgressBar) Close() {
	p.Display()
	fmt.Fprintln(p.out)
}

// Package train provides training-loop utilities, currently an epoch
// progress tracker.
package train

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// barCharset holds a space plus the eight Unicode block elements from
// thinnest to full, used to draw fractional progress.
const barCharset = " ▏▎▍▌▋▊▉█"

// Tracker renders a single-line progress bar over the epochs of a training
// run: percentage and count of completed epochs, elapsed and estimated
// remaining time, and the training rate (flipping between epoch/s and
// s/epoch, whichever reads better).
//
// The bar is redrawn in place with a carriage return, so the writer should be
// a terminal-like stream. Tracker is not safe for concurrent use.
type Tracker struct {
	numEpochs int
	cols      int
	w         io.Writer
	start     time.Time
	now       func() time.Time // for tests
}

// NewTracker creates a tracker for numEpochs epochs writing to w, and
// immediately draws the initial (empty) bar.
func NewTracker(numEpochs int, w io.Writer) *Tracker {
	t := &Tracker{
		numEpochs: numEpochs,
		cols:      128,
		w:         w,
		now:       time.Now,
	}
	t.start = t.now()
	t.Update(0)
	return t
}

// SetWidth overrides the total rendered width in characters (default 128).
func (t *Tracker) SetWidth(cols int) { t.cols = cols }

// Update redraws the bar as of the given completed epoch. Each iterates for
// the caller, but Update remains available for loops the caller owns. After
// the final epoch a newline terminates the bar line.
func (t *Tracker) Update(epoch int) {
	t.refresh(epoch, t.now().Sub(t.start).Seconds())
	if epoch == t.numEpochs {
		fmt.Fprintln(t.w)
	}
}

// Each runs fn for every epoch from 1 through numEpochs, updating the bar
// after each.
func (t *Tracker) Each(fn func(epoch int)) {
	for epoch := 1; epoch <= t.numEpochs; epoch++ {
		fn(epoch)
		t.Update(epoch)
	}
}

func (t *Tracker) refresh(epoch int, elapsed float64) {
	var rate float64
	if elapsed > 0 {
		rate = float64(epoch) / elapsed
	}

	rateStr := "?epoch/s"
	if rate > 0 {
		if inv := 1.0 / rate; inv > 1 {
			rateStr = fmt.Sprintf("%5.2fs/epoch", inv)
		} else {
			rateStr = fmt.Sprintf("%5.2fepoch/s", rate)
		}
	}

	fraction := 0.0
	if t.numEpochs > 0 {
		fraction = float64(epoch) / float64(t.numEpochs)
	}
	remainingStr := "?"
	if rate > 0 {
		remainingStr = FormatInterval(float64(t.numEpochs-epoch) / rate)
	}

	width := len(fmt.Sprint(t.numEpochs))
	prefix := fmt.Sprintf("Epochs completed: %3.0f%%|", fraction*100)
	postfix := fmt.Sprintf("| %*d/%d [%s<%s, %s]",
		width, epoch, t.numEpochs, FormatInterval(elapsed), remainingStr, rateStr)

	barLen := t.cols - len(prefix) - len(postfix)
	if barLen < 1 {
		barLen = 1
	}
	fmt.Fprintf(t.w, "\r%s%s%s", prefix, progressBar(barLen, fraction), postfix)
}

// progressBar renders a bar of maxLen cells filled up to the given fraction,
// using partial block characters for the boundary cell.
func progressBar(maxLen int, fraction float64) string {
	charset := []rune(barCharset)
	nsyms := len(charset) - 1
	units := int(fraction * float64(maxLen) * float64(nsyms))
	full, frac := units/nsyms, units%nsyms

	var b strings.Builder
	for i := 0; i < full && i < maxLen; i++ {
		b.WriteRune(charset[nsyms])
	}
	if full < maxLen {
		b.WriteRune(charset[frac])
		for i := full + 1; i < maxLen; i++ {
			b.WriteRune(charset[0])
		}
	}
	return b.String()
}

// FormatInterval formats a number of seconds as a clock time, [H:]MM:SS.
func FormatInterval(seconds float64) string {
	total := int(seconds)
	m, s := total/60, total%60
	h, m := m/60, m%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

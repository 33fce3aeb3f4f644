// Copyright 2025 The Advanced-Datamining Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides training-loop utilities.
package train

import (
	"io"

	"github.com/Vincent-Talen/Advanced-Datamining/internal/train"
)

// Tracker renders a single-line epoch progress bar.
type Tracker = train.Tracker

// NewTracker creates a tracker for numEpochs epochs writing to w.
//
// Example:
//
//	tracker := train.NewTracker(100, os.Stderr)
//	tracker.Each(func(epoch int) {
//	    // one epoch of work
//	})
func NewTracker(numEpochs int, w io.Writer) *Tracker {
	return train.NewTracker(numEpochs, w)
}

// FormatInterval formats a number of seconds as a clock time, [H:]MM:SS.
func FormatInterval(seconds float64) string {
	return train.FormatInterval(seconds)
}

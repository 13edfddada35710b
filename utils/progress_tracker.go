package utils

import (
	"time"

	"github.com/axonweb3/axon-exec/logger"
)

// ProgressTracker reports the rate and the estimated remaining time of a
// long running bulk operation every threshold steps.
type ProgressTracker struct {
	what      string        // name of the processed items
	step      int           // step counter
	target    int           // total number of steps
	threshold int           // number of steps between reports
	start     time.Time     // start time
	last      time.Time     // last reported time
	rate      float64       // smoothed rate in steps per second
	log       logger.Logger // Message logger
}

// NewProgressTracker creates a new progress tracker for target steps.
func NewProgressTracker(what string, target, threshold int, log logger.Logger) *ProgressTracker {
	if threshold <= 0 {
		threshold = 1
	}
	now := time.Now()
	return &ProgressTracker{
		what:      what,
		target:    target,
		threshold: threshold,
		start:     now,
		last:      now,
		log:       log,
	}
}

// Step records a finished step and reports the progress on every threshold.
func (pt *ProgressTracker) Step() {
	pt.step++
	if pt.step%pt.threshold != 0 && pt.step != pt.target {
		return
	}

	now := time.Now()
	currentRate := float64(pt.threshold) / now.Sub(pt.last).Seconds()
	if pt.rate == 0 {
		pt.rate = currentRate
	} else {
		pt.rate = currentRate*0.1 + pt.rate*0.9
	}
	pt.last = now

	progress := float64(pt.step) / float64(pt.target)
	elapsed := int(now.Sub(pt.start).Seconds())
	eta := int(float64(pt.target-pt.step) / pt.rate)
	pt.log.Infof("Loading %v ... %8.1f %v/s, %5.1f%%, time: %d:%02d, ETA: %d:%02d", pt.what, currentRate, pt.what, progress*100, elapsed/60, elapsed%60, eta/60, eta%60)
}

// Steps returns the number of recorded steps.
func (pt *ProgressTracker) Steps() int {
	return pt.step
}

// Package scheduler provides a uniform interface for submitting job
// scripts to batch queue systems such as SLURM and TORQUE.
package scheduler

import (
	"io"

	"github.com/compbio-workflows/flume/logger"
)

var log = logger.New("scheduler")

// Scheduler submits a job script to a batch queue system.
//
// Submit returns true if the scheduler accepted the script. A false
// return with a nil error means the scheduler declined the
// submission, e.g. in a dry-run mode; that is a normal outcome, not
// a failure.
type Scheduler interface {
	Submit(script io.Reader, args ...string) (bool, error)
}

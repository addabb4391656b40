// Package environment detects the compute environment a workflow is
// running on and adapts job submission accordingly.
//
// An Environment describes one computational context, e.g. a specific
// cluster: how to recognize it from the hostname, which scheduler
// submits its jobs, and how commands must be wrapped for parallel or
// background execution there. Environments are defined once during
// process initialization and read concurrently without locking.
package environment

import (
	"fmt"
	"os"
	"regexp"

	"github.com/compbio-workflows/flume/logger"
	"github.com/compbio-workflows/flume/scheduler"
)

var log = logger.New("environment")

// gethostname is a hook for tests to pin the current host.
var gethostname = os.Hostname

// Status is the outcome of a submission attempt. The zero value
// StatusNone means the scheduler declined the submission, which is a
// normal outcome and not an error.
type Status string

// Submission outcomes.
const (
	StatusNone Status = ""
	Submitted  Status = "submitted"
)

// MissingSchedulerError is returned when an environment without a
// scheduler is asked to submit. Every environment that will be asked
// to submit must define one.
type MissingSchedulerError struct {
	Env string
}

func (e *MissingSchedulerError) Error() string {
	return fmt.Sprintf("environment %q does not define a scheduler", e.Env)
}

// Environment describes a computational environment. Variant behavior
// is supplied through the optional function fields; every nil field
// falls back to the base behavior, so most environments only set a
// name, a hostname pattern and a scheduler.
type Environment struct {
	// Name identifies the environment within a registry.
	Name string

	// HostnamePattern is a regular expression matched against the
	// start of the current hostname, as in "my_server" matching host
	// my_server.com. Empty means the environment is never
	// auto-detected.
	HostnamePattern string

	// Scheduler submits this environment's job scripts. Nil means the
	// environment cannot submit.
	Scheduler scheduler.Scheduler

	// Present replaces hostname detection entirely, e.g. for fallback
	// or test environments which are always present.
	Present func() bool

	// MPI wraps a command for parallel launch at degree np.
	// Defaults to "mpirun -np <np> <cmd>".
	MPI func(cmd string, np int) string

	// Bg wraps a command for background execution.
	// Defaults to appending " &".
	Bg func(cmd string) string

	// Setup pre-populates a new job script from the script options,
	// e.g. the test environment writes one marker line per option.
	Setup func(js *JobScript, opts map[string]interface{})
}

// IsPresent reports whether this environment matches the current
// host. The hostname is looked up on every call, never cached.
// An invalid pattern is logged and treated as absent, so detection
// itself never fails.
func (e *Environment) IsPresent() bool {
	if e.Present != nil {
		return e.Present()
	}
	if e.HostnamePattern == "" {
		return false
	}
	re, err := regexp.Compile("^(?:" + e.HostnamePattern + ")")
	if err != nil {
		log.Error("Invalid hostname pattern", "environment", e.Name, "pattern", e.HostnamePattern, "error", err)
		return false
	}
	host, err := gethostname()
	if err != nil {
		return false
	}
	return re.MatchString(host)
}

// GetScheduler returns the environment's scheduler, failing with a
// *MissingSchedulerError when none is defined.
func (e *Environment) GetScheduler() (scheduler.Scheduler, error) {
	if e.Scheduler == nil {
		return nil, &MissingSchedulerError{Env: e.Name}
	}
	return e.Scheduler, nil
}

// Script returns a new job script bound to this environment. The
// options are handed to the environment's Setup hook, if any.
func (e *Environment) Script(opts map[string]interface{}) *JobScript {
	js := &JobScript{env: e}
	if e.Setup != nil {
		e.Setup(js, opts)
	}
	return js
}

// Submit rewinds the script and hands it to the environment's
// scheduler together with any extra submission arguments. Scripts are
// submitted through the environment rather than directly to the
// scheduler so environment specific post-processing can be inserted
// here without the scheduler knowing about it.
//
// A declined submission returns StatusNone with a nil error; callers
// must check the status rather than expect an error.
func (e *Environment) Submit(js *JobScript, args ...string) (Status, error) {
	sched, err := e.GetScheduler()
	if err != nil {
		return StatusNone, err
	}
	ok, err := sched.Submit(js.Reader(), args...)
	if err != nil {
		return StatusNone, err
	}
	if !ok {
		return StatusNone, nil
	}
	return Submitted, nil
}

func (e *Environment) mpiCmd(cmd string, np int) string {
	if e.MPI != nil {
		return e.MPI(cmd, np)
	}
	return fmt.Sprintf("mpirun -np %d %s", np, cmd)
}

func (e *Environment) bgCmd(cmd string) string {
	if e.Bg != nil {
		return e.Bg(cmd)
	}
	return cmd + " &"
}

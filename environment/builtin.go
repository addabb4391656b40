package environment

import (
	"fmt"
	"sort"

	"github.com/compbio-workflows/flume/scheduler"
)

// markerPrefix prefixes the diagnostic lines the test environment
// writes for each script option.
const markerPrefix = "#TEST"

// Built-in environments.
var (
	// Unknown is the designated fallback environment. It is always
	// present and cannot submit.
	Unknown = &Environment{
		Name:    "unknown",
		Present: alwaysPresent,
	}

	// Test is always present and prints mocked submissions instead of
	// contacting a real batch system. Its scripts start with one
	// marker line per script option, sorted by option name, so script
	// generation can be tested with diff-able output.
	Test = &Environment{
		Name:      "test",
		Scheduler: scheduler.NewFake(),
		Present:   alwaysPresent,
		Setup:     writeTestMarkers,
	}

	// Torque describes environments scheduled by PBS/TORQUE.
	Torque = &Environment{
		Name:            "torque",
		HostnamePattern: "torque",
		Scheduler:       scheduler.NewTorque(),
	}

	// Moab is deprecated and only kept for backwards compatibility.
	// It is an alias of Torque and behaves identically.
	Moab = &Environment{
		Name:            "moab",
		HostnamePattern: Torque.HostnamePattern,
		Scheduler:       Torque.Scheduler,
	}

	// Slurm describes environments scheduled by SLURM.
	Slurm = &Environment{
		Name:            "slurm",
		HostnamePattern: "slurm",
		Scheduler:       scheduler.NewSlurm(),
	}

	// CPU and GPU mark resource classes. They add no behavior of
	// their own and exist as hooks for command-wrapping overrides.
	CPU = &Environment{Name: "cpu"}
	GPU = &Environment{Name: "gpu"}
)

// RegisterDefaults registers the built-in environments with the
// default registry. Call it once during process initialization;
// environments registered afterwards take precedence over these.
//
// Unknown is not registered because Detect already falls back to it,
// and Test is not registered so a test environment never shadows a
// real one; ask for it explicitly instead.
func RegisterDefaults() {
	Register(Torque)
	Register(Moab)
	Register(Slurm)
	Register(CPU)
	Register(GPU)
}

func alwaysPresent() bool {
	return true
}

func writeTestMarkers(js *JobScript, opts map[string]interface{}) {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		js.WriteLine(fmt.Sprintf("%s %s=%v", markerPrefix, k, opts[k]))
	}
}

package scheduler

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"regexp"
)

// NewSlurm returns a new Slurm scheduler which submits via "sbatch".
func NewSlurm() *Slurm {
	return &Slurm{submitCmd: "sbatch"}
}

// Slurm submits job scripts to a SLURM batch queue.
type Slurm struct {
	submitCmd string
}

// Submit pipes the script to sbatch. Extra arguments are passed
// through to the sbatch command line.
func (s *Slurm) Submit(script io.Reader, args ...string) (bool, error) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd := exec.Command(s.submitCmd, args...)
	cmd.Stdin = script
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("%s failed: %v: %s", s.submitCmd, err, stderr.String())
	}

	log.Info("Submitted job", "scheduler", "slurm", "jobID", extractID(stdout.String()))
	return true, nil
}

// extractID extracts the job id from the response returned by the `sbatch` command.
// Example response:
// Submitted batch job 2
func extractID(in string) string {
	re := regexp.MustCompile("(Submitted batch job )([0-9]+)\n$")
	return re.ReplaceAllString(in, "$2")
}

package scheduler

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// NewTorque returns a new Torque scheduler which submits via "qsub".
func NewTorque() *Torque {
	return &Torque{submitCmd: "qsub"}
}

// Torque submits job scripts to a PBS/TORQUE batch queue.
type Torque struct {
	submitCmd string
}

// Submit pipes the script to qsub. Extra arguments are passed through
// to the qsub command line.
func (s *Torque) Submit(script io.Reader, args ...string) (bool, error) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd := exec.Command(s.submitCmd, args...)
	cmd.Stdin = script
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("%s failed: %v: %s", s.submitCmd, err, stderr.String())
	}

	// qsub prints the job id on success
	log.Info("Submitted job", "scheduler", "torque", "jobID", strings.TrimSpace(stdout.String()))
	return true, nil
}

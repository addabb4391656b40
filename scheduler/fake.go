package scheduler

import (
	"fmt"
	"io"
	"os"

	"github.com/kballard/go-shellquote"
)

// NewFake returns a new Fake scheduler writing to stdout.
func NewFake() *Fake {
	return &Fake{Out: os.Stdout}
}

// Fake is a scheduler that prints the submission to its output
// instead of contacting a real batch system. This enables testing of
// job script generation on machines without a scheduler.
type Fake struct {
	Out io.Writer
}

// Submit prints the submission command and script content, then
// declines, so no job is ever reported as submitted.
func (f *Fake) Submit(script io.Reader, args ...string) (bool, error) {
	cmdline := "submit"
	if len(args) > 0 {
		cmdline += " " + shellquote.Join(args...)
	}
	fmt.Fprintf(f.Out, "# Submit command: %s\n", cmdline)
	if _, err := io.Copy(f.Out, script); err != nil {
		return false, err
	}
	return false, nil
}

package environment

import "bytes"

const eol = "\n"

// JobScript accumulates the text of a job submission script, one
// shell statement per line. It is bound to the environment it will
// be submitted through, so commands can be wrapped with that
// environment's parallel-launch and backgrounding conventions.
//
// A script is built fresh for every submission attempt and discarded
// afterwards; it is never shared between submissions.
type JobScript struct {
	env *Environment
	buf bytes.Buffer
}

// Environment returns the environment this script is bound to.
func (js *JobScript) Environment() *Environment {
	return js.env
}

// WriteLine appends line followed by a line terminator.
func (js *JobScript) WriteLine(line string) {
	js.buf.WriteString(line)
	js.buf.WriteString(eol)
}

// WriteCmd appends a command, wrapping it for the parent environment:
// a command with np > 1 gets the environment's parallel-launch
// prefix, and a background command gets the backgrounding suffix.
// Parallel wrapping is applied first so backgrounding covers the
// complete launch invocation.
func (js *JobScript) WriteCmd(cmd string, np int, bg bool) {
	if np > 1 {
		cmd = js.env.mpiCmd(cmd, np)
	}
	if bg {
		cmd = js.env.bgCmd(cmd)
	}
	js.WriteLine(cmd)
}

// Reader returns a reader over the script content, rewound to the
// start. The reader does not consume the underlying buffer, so the
// script can be read again by asking for a new reader.
func (js *JobScript) Reader() *bytes.Reader {
	return bytes.NewReader(js.buf.Bytes())
}

// String returns the script content written so far.
func (js *JobScript) String() string {
	return js.buf.String()
}

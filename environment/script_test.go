package environment

import (
	"io"
	"testing"

	"github.com/andreyvit/diff"
)

func TestWriteLine(t *testing.T) {
	env := &Environment{Name: "test"}
	js := env.Script(nil)

	js.WriteLine("#!/bin/bash")
	js.WriteLine("")
	js.WriteLine("echo hello")

	expect := "#!/bin/bash\n\necho hello\n"
	if js.String() != expect {
		t.Fatal("unexpected script:\n" + diff.LineDiff(expect, js.String()))
	}
}

func TestWriteCmdWrappingOrder(t *testing.T) {
	env := &Environment{Name: "mpi"}
	js := env.Script(nil)

	// parallel wrapping is applied before backgrounding, so the
	// backgrounding suffix covers the whole launch invocation
	js.WriteCmd("run", 4, true)

	expect := "mpirun -np 4 run &\n"
	if js.String() != expect {
		t.Fatal("unexpected script:\n" + diff.LineDiff(expect, js.String()))
	}
}

func TestWriteCmdSerial(t *testing.T) {
	env := &Environment{Name: "serial"}
	js := env.Script(nil)

	js.WriteCmd("run", 1, false)

	if js.String() != "run\n" {
		t.Fatal("serial commands must not be wrapped:", js.String())
	}
}

func TestWriteCmdCustomWrappers(t *testing.T) {
	env := &Environment{
		Name: "custom",
		MPI: func(cmd string, np int) string {
			return "srun -n 8 " + cmd
		},
		Bg: func(cmd string) string {
			return "nohup " + cmd + " &"
		},
	}
	js := env.Script(nil)

	js.WriteCmd("run", 8, true)

	if js.String() != "nohup srun -n 8 run &\n" {
		t.Fatal("unexpected script:", js.String())
	}
}

func TestReaderIsRewound(t *testing.T) {
	env := &Environment{Name: "test"}
	js := env.Script(nil)
	js.WriteLine("echo hello")

	for i := 0; i < 2; i++ {
		b, err := io.ReadAll(js.Reader())
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "echo hello\n" {
			t.Fatal("unexpected content on read", i, ":", string(b))
		}
	}
}

func TestTestEnvironmentMarkerLines(t *testing.T) {
	js := Test.Script(map[string]interface{}{
		"beta":  2,
		"alpha": 1,
	})

	expect := "#TEST alpha=1\n#TEST beta=2\n"
	if js.String() != expect {
		t.Fatal("unexpected script:\n" + diff.LineDiff(expect, js.String()))
	}
}

func TestTestEnvironmentNoOptions(t *testing.T) {
	js := Test.Script(nil)
	if js.String() != "" {
		t.Fatal("expected an empty script, got:", js.String())
	}
}

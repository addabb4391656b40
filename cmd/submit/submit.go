// Package submit contains the job submission command.
package submit

import (
	"fmt"
	"strings"

	"github.com/compbio-workflows/flume/cmd/util"
	"github.com/compbio-workflows/flume/environment"
	"github.com/compbio-workflows/flume/logger"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var log = logger.New("submit")

// NewCommand returns the "submit" subcommand.
func NewCommand() *cobra.Command {
	var (
		confPath string
		np       int
		bg       bool
		test     bool
		opts     []string
	)

	cmd := &cobra.Command{
		Use:   "submit [flags] -- command [args...]",
		Short: "Assemble a job script for the detected environment and submit it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := util.InitEnvironments(confPath); err != nil {
				return err
			}

			env := environment.Detect()
			if test {
				env = environment.Test
			}

			scriptOpts, err := parseOpts(opts)
			if err != nil {
				return err
			}

			js := env.Script(scriptOpts)
			js.WriteLine("#!/bin/bash")
			js.WriteLine("")
			js.WriteCmd(shellquote.Join(args...), np, bg)

			status, err := env.Submit(js)
			if err != nil {
				return err
			}
			if status != environment.Submitted {
				log.Info("Submission declined", "environment", env.Name)
				return nil
			}
			log.Info("Job submitted", "environment", env.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&confPath, "config", "c", "", "Path to the flow config file")
	f.IntVar(&np, "np", 1, "Number of processors required by the command")
	f.BoolVar(&bg, "bg", false, "Run the command in the background")
	f.BoolVar(&test, "test", false, "Use the test environment instead of detection")
	f.StringArrayVar(&opts, "opt", nil, "Script option as key=value, may be repeated")
	return cmd
}

func parseOpts(opts []string) (map[string]interface{}, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	m := make(map[string]interface{}, len(opts))
	for _, o := range opts {
		k, v, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("invalid script option %q, expected key=value", o)
		}
		m[k] = v
	}
	return m, nil
}

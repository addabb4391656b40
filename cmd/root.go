// Package cmd contains the flume CLI commands.
package cmd

import (
	"github.com/compbio-workflows/flume/cmd/env"
	"github.com/compbio-workflows/flume/cmd/submit"
	"github.com/compbio-workflows/flume/cmd/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "flume",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(env.NewCommand())
	RootCmd.AddCommand(submit.NewCommand())
	RootCmd.AddCommand(version.Cmd)
}

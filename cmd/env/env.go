// Package env contains the environment detection commands.
package env

import (
	"fmt"

	"github.com/compbio-workflows/flume/cmd/util"
	"github.com/compbio-workflows/flume/environment"
	"github.com/spf13/cobra"
)

// NewCommand returns the "env" subcommand.
func NewCommand() *cobra.Command {
	var confPath string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the name of the detected compute environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := util.InitEnvironments(confPath); err != nil {
				return err
			}
			fmt.Println(environment.Detect().Name)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered environments in registration order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := util.InitEnvironments(confPath); err != nil {
				return err
			}
			for _, e := range environment.List() {
				marker := " "
				if e.IsPresent() {
					marker = "*"
				}
				fmt.Printf("%s %-12s %s\n", marker, e.Name, e.HostnamePattern)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&confPath, "config", "c", "", "Path to the flow config file")
	cmd.AddCommand(list)
	return cmd
}

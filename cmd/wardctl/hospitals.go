package main

import (
	"github.com/spf13/cobra"
)

func newHospitalsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hospitals",
		Short: "List registered hospitals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := buildService(opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), service.Hospitals())
		},
	}
}

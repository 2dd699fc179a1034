package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every registered hospital data file exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := buildService(opts)
			if err != nil {
				return err
			}

			statuses, err := service.VerifySources(cmd.Context())
			if err != nil {
				return err
			}

			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Exists {
					state = "MISSING"
					missing++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-8s %s\n", status.HospitalID, state, status.Path)
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d hospital data files missing", missing, len(statuses))
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <hospital-id> <query>",
		Short: "Search a hospital's wards and departments",
		Long:  "Prints the records of the hospital whose name, floor, area colour, entrance, location or type contains the query, case-insensitively.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := buildService(opts)
			if err != nil {
				return err
			}

			results, err := service.Search(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
}

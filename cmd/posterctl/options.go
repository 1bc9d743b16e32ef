package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newOptionsCmd(load loader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the company and element dropdown values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}
			opts := c.Options()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(opts)
			}

			fmt.Fprintln(out, "Companies:")
			for _, v := range opts.Companies {
				fmt.Fprintf(out, "  %s\n", v)
			}
			fmt.Fprintln(out, "Elements:")
			for _, v := range opts.Elements {
				fmt.Fprintf(out, "  %s\n", v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

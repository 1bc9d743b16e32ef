package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poster-atlas/site/filter"
)

func newCheckCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the dataset and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}

			posters := c.Posters()
			plottable, withImage, noUID := 0, 0, 0
			for _, p := range posters {
				if p.Plottable() {
					plottable++
				}
				if p.HasImage() {
					withImage++
				}
				if p.UID == "" {
					noUID++
				}
			}
			opts := c.Options()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:      %s\n", c.Source())
			fmt.Fprintf(out, "records:     %d\n", len(posters))
			fmt.Fprintf(out, "unique uids: %d\n", len(filter.Dedupe(posters)))
			fmt.Fprintf(out, "no uid:      %d\n", noUID)
			fmt.Fprintf(out, "plottable:   %d\n", plottable)
			fmt.Fprintf(out, "with image:  %d\n", withImage)
			fmt.Fprintf(out, "companies:   %d\n", len(opts.Companies))
			fmt.Fprintf(out, "elements:    %d\n", len(opts.Elements))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/filter"
)

func newSearchCmd(load loader) *cobra.Command {
	var (
		s           filter.State
		all         bool
		onMap       bool
		selectedUID string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a filter query and print one gallery page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				s.Query = args[0]
			}
			c, err := load(cmd.Context())
			if err != nil {
				return err
			}

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer out.Flush()

			if onMap {
				res := filter.Map(c.Posters(), s, selectedUID)
				for _, m := range res.Markers {
					mark := ""
					if m.Selected {
						mark = "*"
					}
					fmt.Fprintf(out, "%s\t%s\t%.5f\t%.5f\t%s\n", mark, m.Poster.UID, m.Lat, m.Lon, m.Poster.DisplayTitle())
				}
				fmt.Fprintf(out, "Showing: %d locations\n", len(res.Markers))
				return nil
			}

			size := config.PostersPerPage
			if all {
				size = len(c.Posters()) + 1
			}
			res := filter.Gallery(c.Posters(), s, size)
			for _, p := range res.Cards {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", p.UID, p.DisplayTitle(), p.DisplayCompany(), p.DisplayLocation())
			}
			if len(res.Cards) == 0 {
				fmt.Fprintln(out, "Found no results")
			}
			fmt.Fprintf(out, "Page %d of %d (%d posters, %d records)\n",
				res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.Total, res.Matches)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&s.Query, "query", "q", "", "text search")
	f.StringVar(&s.Company, "company", "", "exact railway company")
	f.StringVar(&s.Element, "element", "", "visual element or object")
	f.BoolVar(&s.Train, "train", false, "only posters with a train")
	f.BoolVar(&s.Seaside, "seaside", false, "only seaside posters")
	f.BoolVar(&s.Sports, "sports", false, "only sports posters")
	f.IntVar(&s.Page, "page", 1, "gallery page")
	f.BoolVar(&all, "all", false, "print every matching poster on one page")
	f.BoolVar(&onMap, "map", false, "print map markers instead of gallery cards")
	f.StringVar(&selectedUID, "select", "", "with --map, highlight markers sharing this uid")
	return cmd
}

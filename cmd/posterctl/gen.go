package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type place struct {
	Region    string
	Town      string
	Latitude  float64
	Longitude float64
}

var (
	places = []place{
		{"England; North Yorkshire", "Scarborough", 54.2831, -0.3998},
		{"England; North Yorkshire", "Whitby", 54.4858, -0.6206},
		{"England; Devon", "Torquay", 50.4619, -3.5253},
		{"England; Cornwall", "Penzance", 50.1188, -5.5371},
		{"England; Lancashire", "Blackpool", 53.8175, -3.0357},
		{"Scotland; Fife", "St Andrews", 56.3398, -2.7967},
		{"Scotland; Highland", "Fort William", 56.8198, -5.1052},
		{"Wales; Gwynedd", "Llandudno", 53.3241, -3.8276},
		{"England; Somerset", "Bath", 51.3811, -2.3590},
		{"England; Kent", "Margate", 51.3813, 1.3862},
	}
	companies = []string{"LNER", "GWR", "LMS", "Southern Railway", "British Railways", "N/A"}
	elements  = []string{"Beach", "Sea", "Castle", "Cathedral", "Bus", "Bus Station", "Golf", "Mountains", "Pier", "Harbour"}
	objects   = []string{"Locomotive", "Bucket", "Umbrella", "Sailing boat", "Bicycle"}
	phrases   = []string{"It's quicker by rail", "Travel in comfort", "See Britain by train", "The drier side of Britain", "Cheap tickets from all stations"}
)

type genOptions struct {
	Count      int
	Seed       int64
	Schema     string  // early, later or mixed
	ShareRate  float64 // chance a record reuses an earlier uid
	NoCoordPct float64 // chance a record has no usable coordinates
}

func newGenCmd() *cobra.Command {
	opts := genOptions{}
	var output string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic poster dataset for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.Schema {
			case "early", "later", "mixed":
			default:
				return fmt.Errorf("unknown schema %q", opts.Schema)
			}

			records := generate(opts)
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal posters: %w", err)
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d posters and saved to %s\n", len(records), output)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Count, "count", 30, "number of records to generate")
	f.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
	f.StringVar(&opts.Schema, "schema", "mixed", "source schema: early, later or mixed")
	f.Float64Var(&opts.ShareRate, "share-rate", 0.1, "chance a record shares an earlier uid")
	f.Float64Var(&opts.NoCoordPct, "no-coords", 0.1, "chance a record has no coordinates")
	f.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// generate builds count raw records using the key names of the chosen
// survey schema.
func generate(opts genOptions) []map[string]any {
	rng := rand.New(rand.NewSource(opts.Seed))
	records := make([]map[string]any, 0, opts.Count)
	var uids []string

	for i := 0; i < opts.Count; i++ {
		uid := fmt.Sprintf("RP%04d", i+1)
		if len(uids) > 0 && rng.Float64() < opts.ShareRate {
			uid = uids[rng.Intn(len(uids))]
		} else {
			uids = append(uids, uid)
		}

		later := opts.Schema == "later" || (opts.Schema == "mixed" && rng.Intn(2) == 0)
		pl := places[rng.Intn(len(places))]
		company := companies[rng.Intn(len(companies))]
		elems := pick(rng, elements, 1+rng.Intn(3))
		phrase := phrases[rng.Intn(len(phrases))]

		r := map[string]any{
			"uid":                  uid,
			"id":                   i + 1,
			"title":                pl.Town,
			"Q1_Description":       fmt.Sprintf("%s by %s", pl.Town, company),
			"Q4_Location":          pl.Region + "; " + pl.Town,
			"Q5_RailwayCompany":    company,
			"Q6_ElementsChecklist": strings.Join(elems, "; "),
			"Q9_Transcription":     fmt.Sprintf("%s. %s. %s", strings.ToUpper(pl.Town), phrase, company),
			"image_links":          fmt.Sprintf("https://images.example.org/%s_small.jpg; https://images.example.org/%s_large.jpg", uid, uid),
		}

		train, seaside, sports := yesNo(rng), yesNo(rng), yesNo(rng)
		lat, lon := pl.Latitude+rng.Float64()*0.01, pl.Longitude+rng.Float64()*0.01

		if later {
			r["Q3_Train_Present"] = train
			r["Q7_Seaside_Present"] = seaside
			r["Q8_Sports_Present"] = sports
			r["Q10_Objects"] = strings.Join(pick(rng, objects, 1+rng.Intn(2)), "; ")
			r["Latitude"] = strconv.FormatFloat(lat, 'f', 5, 64)
			r["Longitude"] = strconv.FormatFloat(lon, 'f', 5, 64)
		} else {
			r["Q3_Train"] = train
			r["Q7_Seaside"] = seaside
			r["Q8_Sports"] = sports
			r["Latitude"] = lat
			r["Longitude"] = lon
		}

		if rng.Float64() < opts.NoCoordPct {
			r["Latitude"] = nil
			r["Longitude"] = "unknown"
		}

		records = append(records, r)
	}
	return records
}

func yesNo(rng *rand.Rand) string {
	if rng.Intn(2) == 0 {
		return "yes"
	}
	return "no"
}

func pick(rng *rand.Rand, from []string, n int) []string {
	idx := rng.Perm(len(from))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, from[i])
	}
	return out
}

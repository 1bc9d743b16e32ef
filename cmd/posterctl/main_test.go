package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poster-atlas/site/catalog"
)

const dataset = `[
	{"uid": "X12", "id": 1, "title": "Scarborough", "Q4_Location": "England; Scarborough", "Q5_RailwayCompany": "LNER", "Q6_ElementsChecklist": "Beach; Sea", "Q3_Train": "yes", "Latitude": 54.28, "Longitude": -0.4},
	{"uid": "X12", "id": 2, "title": "Scarborough", "Q4_Location": "England; Scarborough", "Q5_RailwayCompany": "LNER", "Q6_ElementsChecklist": "Beach", "Latitude": "54.29", "Longitude": "-0.41"},
	{"uid": "B7", "id": 3, "title": "Bath", "Q5_RailwayCompany": "GWR", "Q6_ElementsChecklist": "Bus Station", "Latitude": null, "Longitude": -2.36},
	{"uid": "C9", "id": 4, "title": "Torquay", "Q5_RailwayCompany": "GWR", "Q10_Objects": "Bus", "Q3_Train_Present": "Yes", "Latitude": 50.46, "Longitude": -3.52}
]`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "--data", writeDataset(t), "check")
	require.NoError(t, err)

	assert.Contains(t, out, "records:     4")
	assert.Contains(t, out, "unique uids: 3")
	assert.Contains(t, out, "plottable:   3")
	assert.Contains(t, out, "companies:   2")
}

func TestCheckLoadFailure(t *testing.T) {
	_, err := run(t, "--data", filepath.Join(t.TempDir(), "absent.json"), "check")
	var loadErr *catalog.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestOptionsJSON(t *testing.T) {
	out, err := run(t, "--data", writeDataset(t), "options", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"companies":["GWR","LNER"],"elements":["Beach","Bus","Bus Station","Sea"]}`, out)
}

func TestSearch(t *testing.T) {
	path := writeDataset(t)

	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{
			name: "company",
			args: []string{"search", "--company", "GWR"},
			want: []string{"B7", "C9", "Page 1 of 1 (2 posters, 2 records)"},
			skip: []string{"X12"},
		},
		{
			name: "element substring",
			args: []string{"search", "--element", "Bus"},
			want: []string{"B7", "C9"},
		},
		{
			name: "train toggle is case insensitive",
			args: []string{"search", "--train"},
			want: []string{"X12", "C9", "(2 posters, 2 records)"},
		},
		{
			name: "query argument",
			args: []string{"search", "scarborough"},
			want: []string{"Page 1 of 1 (1 posters, 2 records)"},
		},
		{
			name: "no results",
			args: []string{"search", "-q", "zeppelin"},
			want: []string{"Found no results", "Page 1 of 1"},
		},
		{
			name: "map selection",
			args: []string{"search", "--map", "--select", "X12"},
			want: []string{"Showing: 3 locations"},
			skip: []string{"B7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--data", path}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, s := range tt.skip {
				assert.NotContains(t, out, s)
			}
		})
	}

	out, err := run(t, "--data", path, "search", "--map", "--select", "X12")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "*"))
}

func TestGenerate(t *testing.T) {
	opts := genOptions{Count: 50, Seed: 7, Schema: "mixed", ShareRate: 0.2, NoCoordPct: 0.5}

	a := generate(opts)
	b := generate(opts)
	assert.Equal(t, a, b, "same seed gives the same dataset")
	require.Len(t, a, 50)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	posters, err := catalog.Decode(data)
	require.NoError(t, err)

	plottable := 0
	for _, p := range posters {
		assert.NotEmpty(t, p.UID)
		assert.NotEmpty(t, p.Title)
		if p.Plottable() {
			plottable++
		}
	}
	assert.Greater(t, plottable, 0)
	assert.Less(t, plottable, 50)
}

func TestGenCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.json")
	out, err := run(t, "gen", "--count", "12", "--seed", "1", "--schema", "later", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 12 posters")

	c := catalog.New(path)
	require.NoError(t, c.Load(t.Context()))
	assert.Len(t, c.Posters(), 12)

	_, err = run(t, "gen", "--schema", "future")
	assert.Error(t, err)
}

package poster

import (
	"encoding/json"
	"html"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/poster-atlas/site/config"
)

// Poster is the canonical shape of one dataset record. Everything downstream
// of the loader works on this type only; source key names live in fieldKeys.
type Poster struct {
	UID           string   `json:"uid"`
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Transcription string   `json:"transcription"`
	Company       string   `json:"company"`
	Elements      string   `json:"elements"`
	Objects       string   `json:"objects"`
	Train         string   `json:"train"`
	Seaside       string   `json:"seaside"`
	Sports        string   `json:"sports"`
	ImageLinks    string   `json:"image_links"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// Source keys per canonical field, tried in order. The dataset has been
// exported by several survey revisions and each renamed a few columns.
var fieldKeys = struct {
	uid, id, title, description, location, transcription, company []string
	elements, objects, train, seaside, sports, images, lat, lon   []string
}{
	uid:           []string{"uid", "UID", "Uid"},
	id:            []string{"id", "ID", "record_id"},
	title:         []string{"title", "Title"},
	description:   []string{"Q1_Description", "description", "Description"},
	location:      []string{"Q4_Location", "location", "Location"},
	transcription: []string{"Q9_Transcription", "transcription", "Transcription"},
	company:       []string{"Q5_RailwayCompany", "railway_company", "company", "Company"},
	elements:      []string{"Q6_ElementsChecklist", "elements", "Elements"},
	objects:       []string{"Q10_Objects", "objects", "Objects"},
	train:         []string{"Q3_Train_Present", "Q3_Train", "train"},
	seaside:       []string{"Q7_Seaside_Present", "Q7_Seaside", "seaside"},
	sports:        []string{"Q8_Sports_Present", "Q8_Sports", "sports"},
	images:        []string{"image_links", "Image_Links", "images"},
	lat:           []string{"Latitude", "latitude", "lat"},
	lon:           []string{"Longitude", "longitude", "lng", "lon"},
}

var textPolicy = bluemonday.StrictPolicy()

// Normalize maps one raw record onto the canonical Poster. It never fails:
// absent, null or non-scalar values become empty strings and unusable
// coordinates are left nil.
func Normalize(raw map[string]any) Poster {
	p := Poster{
		ID:            lookup(raw, fieldKeys.id),
		Title:         cleanText(lookup(raw, fieldKeys.title)),
		Description:   cleanText(lookup(raw, fieldKeys.description)),
		Location:      cleanText(lookup(raw, fieldKeys.location)),
		Transcription: cleanText(lookup(raw, fieldKeys.transcription)),
		Company:       cleanText(lookup(raw, fieldKeys.company)),
		Elements:      cleanText(lookup(raw, fieldKeys.elements)),
		Objects:       cleanText(lookup(raw, fieldKeys.objects)),
		Train:         lookup(raw, fieldKeys.train),
		Seaside:       lookup(raw, fieldKeys.seaside),
		Sports:        lookup(raw, fieldKeys.sports),
		ImageLinks:    lookup(raw, fieldKeys.images),
		Latitude:      lookupFloat(raw, fieldKeys.lat),
		Longitude:     lookupFloat(raw, fieldKeys.lon),
	}

	p.UID = lookup(raw, fieldKeys.uid)
	if p.UID == "" {
		p.UID = p.ID
	}
	if p.Title == "" {
		p.Title = p.Description
	}
	return p
}

// Plottable reports whether both coordinates are present.
func (p Poster) Plottable() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// DisplayTitle returns the title or "Untitled".
func (p Poster) DisplayTitle() string {
	if p.Title == "" {
		return "Untitled"
	}
	return p.Title
}

// DisplayLocation returns the most specific location segment, which the
// survey records last, or N/A.
func (p Poster) DisplayLocation() string {
	parts := strings.Split(p.Location, ";")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return config.NotApplicable
	}
	return last
}

// DisplayCompany returns the company or N/A.
func (p Poster) DisplayCompany() string {
	if p.Company == "" {
		return config.NotApplicable
	}
	return p.Company
}

// Keywords returns the element checklist as a comma separated line.
func (p Poster) Keywords() string {
	return strings.Join(SplitList(p.Elements), ", ")
}

// Tags returns the trimmed element and object tokens.
func (p Poster) Tags() []string {
	return append(SplitList(p.Elements), SplitList(p.Objects)...)
}

// Snippet returns the first n characters of the transcription, falling back
// to the description, with an ellipsis when shortened.
func (p Poster) Snippet(n int) string {
	text := p.Transcription
	if text == "" {
		text = p.Description
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}

// ImageURL returns the preferred image for the poster.
func (p Poster) ImageURL() string {
	return SelectImage(SplitList(p.ImageLinks))
}

// IsYes reports whether a survey answer is the literal "yes", ignoring case.
func IsYes(answer string) bool {
	return strings.ToLower(answer) == "yes"
}

// SplitList splits a semicolon separated field into trimmed, non-empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func lookup(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if s := scalarString(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

func lookupFloat(raw map[string]any, keys []string) *float64 {
	for _, k := range keys {
		if f, ok := scalarFloat(raw[k]); ok {
			return &f
		}
	}
	return nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

func scalarFloat(v any) (float64, bool) {
	var f float64
	var err error
	switch t := v.(type) {
	case float64:
		f = t
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

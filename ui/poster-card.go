package ui

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/poster-atlas/site/config"
	"github.com/poster-atlas/site/poster"
)

var imageProxy bool

// UseImageProxy routes card images through the local thumbnail proxy
// instead of linking the remote image directly.
func UseImageProxy(enabled bool) {
	imageProxy = enabled
}

func posterPath(p poster.Poster) string {
	return "/poster/" + url.PathEscape(p.UID)
}

// posterImageSrc returns the card image URL for the given proxy size. The
// record ID pins the thumbnail to this record within its UID group.
func posterImageSrc(p poster.Poster, size string) string {
	if imageProxy && p.UID != "" && p.HasImage() {
		src := fmt.Sprintf("/image/%s/%s", url.PathEscape(p.UID), size)
		if p.ID != "" {
			src += "?id=" + url.QueryEscape(p.ID)
		}
		return src
	}
	return p.ImageURL()
}

func posterImage(src, alt string) g.Node {
	return Img(
		Src(src),
		Alt(alt),
		g.Attr("loading", "lazy"),
		g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", config.PlaceholderImageURL)),
		Class("object-contain w-full h-48 bg-gray-100"),
	)
}

// PosterCard renders one gallery card. Cards with a UID open the detail
// modal for every record sharing it.
func PosterCard(p poster.Poster) g.Node {
	title := p.DisplayTitle()
	class := "border rounded-lg shadow-sm bg-white flex flex-col hover:shadow-md transition-shadow"
	if p.UID != "" {
		class += " cursor-pointer"
	}
	return Div(
		Class(class),
		g.Attr("data-uid", p.UID),
		g.If(p.UID != "", g.Group([]g.Node{
			hx.Get(posterPath(p)),
			hx.Target("#poster-detail"),
			hx.Swap("innerHTML"),
		})),
		Div(
			Class("rounded-t-lg overflow-hidden"),
			posterImage(posterImageSrc(p, "480w"), "Poster image: "+title),
		),
		Div(
			Class("p-3 flex flex-col gap-1"),
			H3(Class("font-semibold text-base"), g.Text(title)),
			labelValue("Company", p.DisplayCompany()),
			labelValue("Location", p.DisplayLocation()),
			g.If(p.Keywords() != "", labelValue("Keywords", p.Keywords())),
			g.If(p.Snippet(config.SnippetLength) != "",
				P(
					Class("text-xs text-gray-500 italic"),
					Strong(g.Text("Text: ")),
					g.Text(p.Snippet(config.SnippetLength)),
				),
			),
		),
	)
}

package components

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/hero"
)

// HeroBanner renders the first frame of the slideshow. When a stream URL is
// set the page script swaps image and word as frames arrive; otherwise it
// rotates the lists it finds in the data attributes on its own timer.
func HeroBanner(d PageData) g.Node {
	h := d.Site.Hero
	frame := hero.Frame{}
	if r, err := hero.NewRotator(h.Images, h.Words); err == nil {
		frame = r.Frame()
	}
	interval := d.HeroInterval
	if interval <= 0 {
		interval = hero.DefaultInterval
	}

	return Section(
		ID("top"),
		Class("hero"),
		Data("hero", ""),
		g.If(d.HeroStream != "", Data("hero-stream", d.HeroStream)),
		Data("hero-images", jsonAttr(h.Images)),
		Data("hero-words", jsonAttr(h.Words)),
		Data("hero-interval", strconv.FormatInt(interval.Milliseconds(), 10)),
		Div(
			Class("hero-bg"),
			Img(Src(frame.Image), Alt("Hero background"), Data("hero-image", ""), g.Attr("fetchpriority", "high")),
		),
		Div(
			Class("hero-body"),
			H1(g.Text(h.Headline)),
			P(Class("hero-lead"), g.Text(h.Lead)),
			Div(
				Class("hero-actions"),
				A(Class("btn btn-primary"), Href("#contact"), g.Text(h.CTA)),
				A(Class("btn btn-outline"), Target("_blank"), Rel("noopener noreferrer"), Href(d.Links.Chat(h.ChatText)), g.Text(h.ChatLabel)),
			),
			Div(
				Class("hero-tag"),
				Span(Class("hero-word"), Data("hero-word", ""), Aria("live", "polite"), g.Text(frame.Word)),
			),
		),
	)
}

func jsonAttr(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/content"
	"intellecta-site/pkg/faq"
	"intellecta-site/pkg/reveal"
)

func Services(s content.Services) g.Node {
	return Section(
		ID("services"),
		Class("section"),
		reveal.Wrap(reveal.Default(), "",
			H2(g.Text(s.Heading)),
			P(g.Text(s.Lead)),
			Div(
				Class("grid"),
				g.Map(s.Items, func(c content.Card) g.Node {
					return reveal.Wrap(reveal.WithOffset(22), "",
						Article(
							Class("card"),
							g.If(c.Image != "", Img(Src(c.Image), Alt(c.Title), g.Attr("loading", "lazy"))),
							icon(c.Icon),
							H3(g.Text(c.Title)),
							P(g.Text(c.Desc)),
						),
					)
				}),
			),
		),
	)
}

func WhyUs(w content.WhyUs) g.Node {
	return Section(
		ID("why"),
		Class("section"),
		reveal.Wrap(reveal.Default(), "",
			eyebrow(w.Eyebrow),
			H2(g.Text(w.Heading)),
			P(g.Text(w.Lead)),
			Div(
				Class("grid"),
				g.Map(w.Items, func(c content.Card) g.Node {
					return reveal.Wrap(reveal.WithOffset(12), "",
						Div(Class("card"), icon(c.Icon), H3(g.Text(c.Title)), P(g.Text(c.Desc))),
					)
				}),
			),
			Div(
				Class("grid stats"),
				g.Map(w.Stats, func(s content.Stat) g.Node {
					return reveal.Wrap(reveal.WithOffset(8), "",
						Div(Class("card stat"), Strong(g.Text(s.Value)), Span(g.Text(s.Label))),
					)
				}),
			),
		),
	)
}

func Process(p content.Process) g.Node {
	steps := make([]g.Node, 0, len(p.Steps))
	for i, s := range p.Steps {
		steps = append(steps, reveal.Wrap(reveal.WithOffset(18), "",
			Li(
				Class("card step"),
				Span(Class("step-index"), g.Textf("%02d", i+1)),
				H3(g.Text(s.Title)),
				P(g.Text(s.Desc)),
			),
		))
	}

	return Section(
		ID("process"),
		Class("section"),
		reveal.Wrap(reveal.Default(), "",
			eyebrow(p.Eyebrow),
			H2(g.Text(p.Heading)),
			P(g.Text(p.Lead)),
			Div(
				Class("grid"),
				Ol(Class("steps"), g.Group(steps)),
				g.If(p.Image != "", reveal.Wrap(reveal.WithOffset(16), "",
					Img(Src(p.Image), Alt("Students on their pathway to the UK"), g.Attr("loading", "lazy")),
				)),
			),
		),
	)
}

// FAQs renders the accordion. Each question links to the state a click would
// produce, so it also works without the page script.
func FAQs(f content.FAQs, acc *faq.Accordion) g.Node {
	items := make([]g.Node, 0, len(f.Items))
	for i, qa := range f.Items {
		open := acc.IsOpen(i)
		class := "card faq-item"
		if open {
			class += " is-open"
		}
		answerID := fmt.Sprintf("faq-answer-%d", i)

		items = append(items, reveal.Wrap(reveal.WithOffset(14), "",
			Div(
				Class(class),
				Data("faq-item", ""),
				A(
					Class("faq-toggle"),
					Data("faq-toggle", ""),
					Href("?faq="+acc.After(i).Query()+"#faqs"),
					Aria("expanded", fmt.Sprint(open)),
					Aria("controls", answerID),
					Span(g.Text(qa.Q)),
					icon("chevron-down"),
				),
				Div(ID(answerID), Class("faq-answer"), P(g.Text(qa.A))),
			),
		))
	}

	return Section(
		ID("faqs"),
		Class("section"),
		reveal.Wrap(reveal.Default(), "",
			eyebrow(f.Eyebrow),
			H2(g.Text(f.Heading)),
			P(g.Text(f.Lead)),
			Div(Class("grid"), g.Group(items)),
		),
	)
}

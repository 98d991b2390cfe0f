package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/links"
)

func PageFooter(d PageData) g.Node {
	b := d.Site.Brand
	return Footer(
		Class("footer"),
		Div(
			Class("container grid"),
			Div(
				Strong(g.Text(b.Name)),
				P(g.Text(b.About)),
				socialIcons(d),
			),
			Div(
				H4(g.Text("Explore")),
				navLinks(),
			),
			Div(
				H4(g.Text("Contact")),
				Ul(
					Class("contact-list"),
					Li(icon("map-pin"), Span(g.Text(b.Address))),
					Li(icon("phone"), A(Href("tel:"+strings.ReplaceAll(b.Phone, " ", "")), g.Text(b.Phone))),
					Li(icon("mail"), A(Href(links.Mailto(b.Email, "", "")), g.Text(b.Email))),
				),
			),
		),
		P(
			Class("footer-bottom"),
			g.Text("© "+strconv.Itoa(d.Year)+" "+b.Name+". All rights reserved."),
		),
		A(Class("sr-only"), Href("#top"), g.Text("Back to top")),
	)
}

package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/content"
	"intellecta-site/pkg/nav"
)

// Navbar renders the sticky header and the mobile drawer. The drawer works
// without the script through ?menu=open.
func Navbar(d PageData) g.Node {
	menu := d.Menu
	drawerClass := "drawer"
	if menu.Open {
		drawerClass += " is-open"
	}

	return g.Group{
		Header(
			Class("navbar"),
			Data("navbar", ""),
			Div(
				Class("container"),
				A(Href("/"), Class("brand"), Strong(g.Text(d.Site.Brand.Name))),
				Nav(
					Aria("label", "Primary"),
					navLinks(),
				),
				Div(
					Class("nav-actions"),
					socialIcons(d),
					A(Class("btn btn-primary"), Href("#contact"), g.Text("Book Consultation")),
					A(
						Class("drawer-toggle"),
						Data("drawer-toggle", ""),
						Href("?menu="+menu.ToggleQuery()),
						Aria("label", "Open menu"),
						icon("menu"),
					),
				),
			),
		),
		Div(
			Class(drawerClass),
			Data("drawer", ""),
			A(
				Class("drawer-close"),
				Data("drawer-toggle", ""),
				Href("?menu="),
				Aria("label", "Close menu"),
				icon("x"),
			),
			navLinks(),
			A(Class("btn btn-primary"), Href("#contact"), g.Text("Book Consultation")),
			socialIcons(d),
		),
	}
}

func navLinks() g.Node {
	return Ul(
		Class("nav-links"),
		g.Map(nav.Links, func(l nav.Link) g.Node {
			return Li(A(Href(l.Href), g.Text(l.Label)))
		}),
	)
}

func socialIcons(d PageData) g.Node {
	return Div(
		Class("socials"),
		g.Map(d.Site.Brand.Socials, func(l content.Link) g.Node {
			return A(Href(l.Href), Target("_blank"), Rel("noopener noreferrer"), Aria("label", l.Label), icon(socialIcon(l.Label)))
		}),
		A(Href(d.Links.Chat(d.Site.Brand.ChatText)), Target("_blank"), Rel("noopener noreferrer"), Aria("label", "WhatsApp"), icon("message-circle-more")),
	)
}

func socialIcon(label string) string {
	switch strings.ToLower(label) {
	case "tiktok":
		return "ticket"
	default:
		return strings.ToLower(label)
	}
}

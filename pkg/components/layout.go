package components

import (
	"encoding/json"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/content"
	"intellecta-site/pkg/faq"
	"intellecta-site/pkg/links"
	"intellecta-site/pkg/models"
	"intellecta-site/pkg/nav"
	"intellecta-site/pkg/services"
	"intellecta-site/pkg/validation"
)

// PageData is everything needed to render the page for one request.
type PageData struct {
	Site    *content.Site
	BaseURL string
	Links   links.Builder
	Menu    nav.Menu
	FAQ     *faq.Accordion
	Form    FormState
	// HeroStream is the SSE endpoint for slides; empty renders a static hero.
	HeroStream string
	// HeroInterval paces the in-browser rotation used when there is no stream.
	HeroInterval time.Duration
	// API is where the page script posts enquiries.
	API string
	// ContactAction is the form's plain POST target; empty means /contact.
	ContactAction string
	ResetDelay    time.Duration
	Year          int
}

// FormState is the contact form as it should be shown.
type FormState struct {
	Values   models.Enquiry
	Errors   validation.FieldErrors
	Status   models.SubmitStatus
	Dispatch *services.Dispatch
}

// Page renders the whole document.
func Page(d PageData) g.Node {
	if d.FAQ == nil {
		d.FAQ = faq.New(len(d.Site.FAQs.Items))
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1, maximum-scale=5")),
				Meta(Name("theme-color"), Content("#0A66C2")),
				TitleEl(g.Text(d.Site.Brand.Title)),
				Meta(Name("description"), Content(d.Site.Brand.Description)),
				Link(Rel("canonical"), Href(d.BaseURL)),

				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:url"), Content(d.BaseURL)),
				Meta(g.Attr("property", "og:title"), Content(d.Site.Brand.Title)),
				Meta(g.Attr("property", "og:site_name"), Content(d.Site.Brand.Name)),
				Meta(g.Attr("property", "og:description"), Content(d.Site.Brand.SocialDescription)),
				Meta(Name("twitter:card"), Content("summary_large_image")),
				Meta(Name("twitter:title"), Content(d.Site.Brand.Title)),
				Meta(Name("twitter:description"), Content(d.Site.Brand.SocialDescription)),

				Link(Rel("icon"), Href("/favicon.ico")),
				Link(Rel("apple-touch-icon"), Href("/apple-touch-icon.png")),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				Script(Type("application/ld+json"), g.Raw(organizationJSONLD(d))),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Src("/static/site.js"), Defer()),
			),
			Body(
				A(Class("sr-only skip-link"), Href("#main"), g.Text("Skip to content")),
				Navbar(d),
				HeroBanner(d),
				Main(
					ID("main"),
					Class("container"),
					Services(d.Site.Services),
					WhyUs(d.Site.WhyUs),
					Process(d.Site.Process),
					FAQs(d.Site.FAQs, d.FAQ),
					Contact(d),
				),
				PageFooter(d),
				Div(ID("sr-status"), Class("sr-only"), Aria("live", "polite"), Aria("atomic", "true")),
			),
		),
	)
}

func organizationJSONLD(d PageData) string {
	sameAs := make([]string, 0, len(d.Site.Brand.Socials))
	for _, s := range d.Site.Brand.Socials {
		sameAs = append(sameAs, s.Href)
	}
	doc := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     d.Site.Brand.Name,
		"url":      d.BaseURL,
		"logo":     d.BaseURL + "/apple-touch-icon.png",
		"sameAs":   sameAs,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func icon(name string) g.Node {
	return Span(Class("iconify"), Data("icon", "lucide:"+name), Aria("hidden", "true"))
}

func eyebrow(text string) g.Node {
	return g.If(text != "", Span(Class("eyebrow"), g.Text(text)))
}

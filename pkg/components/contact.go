package components

import (
	"encoding/json"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"intellecta-site/pkg/links"
	"intellecta-site/pkg/models"
	"intellecta-site/pkg/reveal"
	"intellecta-site/pkg/validation"
)

type field struct {
	name        string
	label       string
	kind        string
	placeholder string
	complete    string
	// min mirrors the validate tag on models.Enquiry so the script can check
	// the form before anything is sent.
	min  int
	wide bool
}

var contactFields = []field{
	{name: "name", label: "Full name", kind: "text", placeholder: "Jane Doe", complete: "name", min: 2},
	{name: "email", label: "Email", kind: "email", placeholder: "jane@example.com", complete: "email"},
	{name: "phone", label: "Phone / WhatsApp", kind: "tel", placeholder: "+44 7…", complete: "tel", min: 6},
	{name: "studyLevel", label: "Study level", kind: "text", placeholder: "Undergraduate, Masters…", min: 2},
	{name: "intake", label: "Target intake", kind: "text", placeholder: "September 2025", min: 2},
	{name: "message", label: "How can we help?", kind: "textarea", placeholder: "Tell us about your plans", min: 5, wide: true},
}

// Contact renders the enquiry form. Without the page script it posts to
// /contact and the server answers with the same form, errors and links filled in.
// The script validates in the browser and, when no API is set, builds both
// links itself from the data-email and data-whatsapp attributes.
func Contact(d PageData) g.Node {
	c := d.Site.Contact
	st := d.Form.Status
	action := d.ContactAction
	if action == "" {
		action = "/contact"
	}

	return Section(
		ID("contact"),
		Class("section"),
		reveal.Wrap(reveal.Default(), "",
			eyebrow(c.Eyebrow),
			H2(g.Text(c.Heading)),
			P(g.Text(c.Lead)),
			Div(
				Class("card"),
				FormEl(
					Method("post"),
					Action(action),
					g.If(strings.HasPrefix(action, "mailto:"), g.Attr("enctype", "text/plain")),
					Data("contact-form", ""),
					g.If(d.API != "", Data("api", d.API)),
					Data("email", d.Links.Email),
					Data("whatsapp", d.Links.WhatsAppNumber),
					Data("subject", links.Subject),
					Data("greeting", links.Greeting),
					Data("reset-ms", strconv.FormatInt(d.ResetDelay.Milliseconds(), 10)),
					g.Attr("novalidate"),

					g.If(d.Form.Errors["form"] != "", P(Class("field-error"), g.Attr("role", "alert"), g.Text(d.Form.Errors["form"]))),

					Div(
						Class("honeypot"),
						Aria("hidden", "true"),
						g.El("label", g.Attr("for", "company"), g.Text("Company")),
						Input(ID("company"), Name("company"), Type("text"), g.Attr("tabindex", "-1"), AutoComplete("off"), Value(d.Form.Values.Company)),
					),

					Div(
						Class("form-grid"),
						g.Map(contactFields, func(f field) g.Node {
							return formField(f, fieldValue(d.Form.Values, f.name), d.Form.Errors[f.name])
						}),
						Div(
							Class("field field-wide"),
							g.El("label",
								Input(Type("checkbox"), Name("consent"), Value("true"), g.If(d.Form.Values.Consent, Checked())),
								g.Text(" I agree to be contacted about my enquiry."),
							),
						),
					),

					Div(
						Class("form-actions"),
						Button(
							Type("submit"),
							Class("btn btn-primary"),
							Data("submit", ""),
							Data("labels", statusLabels()),
							g.If(st.Busy(), Disabled()),
							g.Text(st.Label()),
						),
						A(Class("btn btn-outline"), Href(links.Mailto(d.Links.Email, "", "")), g.Text("Email us")),
						A(Class("btn btn-outline"), Target("_blank"), Rel("noopener noreferrer"), Href(d.Links.Chat(d.Site.Brand.ChatText)), g.Text("Chat on WhatsApp")),
					),
				),
				g.Iff(d.Form.Dispatch != nil, func() g.Node { return dispatchPanel(d) }),
				P(Class("privacy"), g.Text(c.Privacy)),
			),
		),
	)
}

func formField(f field, value, errMsg string) g.Node {
	id := "contact-" + f.name
	errID := id + "-error"
	class := "field"
	if f.wide {
		class += " field-wide"
	}

	attrs := g.Group{
		ID(id),
		Name(f.name),
		Placeholder(f.placeholder),
		Aria("describedby", errID),
		g.If(errMsg != "", Aria("invalid", "true")),
		g.If(f.complete != "", AutoComplete(f.complete)),
		g.If(f.min > 0, g.Attr("minlength", strconv.Itoa(f.min))),
	}

	var control g.Node
	if f.kind == "textarea" {
		control = Textarea(attrs, g.Attr("rows", "4"), g.Text(value))
	} else {
		control = Input(attrs, Type(f.kind), Value(value))
	}

	return Div(
		Class(class),
		g.El("label", g.Attr("for", id), g.Text(f.label)),
		control,
		P(ID(errID), Class("field-error"), Data("error-for", f.name), Data("message", validation.Message(f.name)), g.Text(errMsg)),
	)
}

func fieldValue(e models.Enquiry, name string) string {
	switch name {
	case "name":
		return e.Name
	case "email":
		return e.Email
	case "phone":
		return e.Phone
	case "studyLevel":
		return e.StudyLevel
	case "intake":
		return e.Intake
	case "message":
		return e.Message
	}
	return ""
}

func statusLabels() string {
	labels := map[string]string{}
	for _, s := range []models.SubmitStatus{models.StatusIdle, models.StatusSending, models.StatusDone} {
		labels[s.String()] = s.Label()
	}
	b, _ := json.Marshal(labels)
	return string(b)
}

func dispatchPanel(d PageData) g.Node {
	p := d.Form.Dispatch
	return Div(
		Class("dispatch"),
		g.Attr("role", "status"),
		Strong(g.Text("Thanks! Your enquiry is ready to send.")),
		P(g.Text("Finish in whichever app you prefer:")),
		Div(
			Class("form-actions"),
			A(Class("btn btn-primary"), Href(p.EmailURL), g.Text("Open email")),
			A(Class("btn btn-outline"), Target("_blank"), Rel("noopener noreferrer"), Href(p.MessagingURL), g.Text("Open WhatsApp")),
		),
	)
}

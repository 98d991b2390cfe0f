// Package links builds the outbound deep-links an enquiry is handed off through.
package links

import (
	"net/url"
	"strings"

	"intellecta-site/pkg/models"
)

const (
	// Subject is used for every enquiry email.
	Subject = "Free Consultation — Intellecta Education"
	// Greeting prefixes the messaging-app text.
	Greeting = "Hello Intellecta Education, I’d like a consultation."

	whatsAppBase = "https://wa.me/"
)

// componentUnescaper undoes the QueryEscape cases encodeURIComponent leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent escapes s like encodeURIComponent: spaces become %20, never '+',
// and !'()* are kept as is.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Summary renders the enquiry as the plain text that goes into both links.
func Summary(e models.Enquiry) string {
	var b strings.Builder
	b.WriteString("Name: " + e.Name + "\n")
	b.WriteString("Email: " + e.Email + "\n")
	b.WriteString("Phone/WhatsApp: " + e.Phone + "\n")
	b.WriteString("Study level: " + e.StudyLevel + "\n")
	b.WriteString("Target intake: " + e.Intake + "\n")
	b.WriteString("Message: " + e.Message)
	return b.String()
}

// Mailto builds a compose link. Empty subject or body are left out.
func Mailto(to, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+EncodeComponent(subject))
	}
	if body != "" {
		params = append(params, "body="+EncodeComponent(body))
	}
	link := "mailto:" + to
	if len(params) > 0 {
		link += "?" + strings.Join(params, "&")
	}
	return link
}

// WhatsApp builds a wa.me share link. number may be empty to let the user pick a chat.
func WhatsApp(number, text string) string {
	return whatsAppBase + number + "?text=" + EncodeComponent(text)
}

// Builder produces both links for an enquiry.
type Builder struct {
	Email          string
	WhatsAppNumber string
}

// EmailURL is the compose link carrying the summary.
func (b Builder) EmailURL(summary string) string {
	return Mailto(b.Email, Subject, summary)
}

// MessagingURL is the share link carrying the greeting and the summary.
func (b Builder) MessagingURL(summary string) string {
	return WhatsApp(b.WhatsAppNumber, Greeting+"\n\n"+summary)
}

// Chat is a messaging link with free text, used by the static call-to-action buttons.
func (b Builder) Chat(text string) string {
	return WhatsApp(b.WhatsAppNumber, text)
}

package links

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intellecta-site/pkg/models"
)

func sample() models.Enquiry {
	return models.Enquiry{
		Name:       "Ana María O'Neil",
		Email:      "ana+uk@example.com",
		Phone:      "+44 (0)75 3808 3762",
		StudyLevel: "Masters & PhD",
		Intake:     "Sep 2026",
		Message:    "100% keen?\nLine two: a=b & c#d / 50€",
	}
}

func TestEncodeComponentUsesPercent20(t *testing.T) {
	assert.Equal(t, "a%20b%2Bc%26d%3De", EncodeComponent("a b+c&d=e"))
	assert.Equal(t, "line%0Anext", EncodeComponent("line\nnext"))
}

func TestEncodeComponentKeepsUnreservedMarks(t *testing.T) {
	assert.Equal(t, "O'Neil!%20(UK)*", EncodeComponent("O'Neil! (UK)*"))
	assert.Equal(t, "a~b-c_d.e", EncodeComponent("a~b-c_d.e"))
	assert.Equal(t, "%25%2F%3F%23", EncodeComponent("%/?#"))
}

func TestSummaryLayout(t *testing.T) {
	got := Summary(models.Enquiry{
		Name: "Jane", Email: "j@x.io", Phone: "123456",
		StudyLevel: "UG", Intake: "Jan", Message: "Hello",
	})
	want := "Name: Jane\nEmail: j@x.io\nPhone/WhatsApp: 123456\nStudy level: UG\nTarget intake: Jan\nMessage: Hello"
	assert.Equal(t, want, got)
}

func TestEmailURLRoundTrip(t *testing.T) {
	b := Builder{Email: "info@intellecta.uk"}
	summary := Summary(sample())

	link := b.EmailURL(summary)
	require.True(t, strings.HasPrefix(link, "mailto:info@intellecta.uk?"))
	assert.NotContains(t, link, "+", "spaces must not be encoded as '+'")

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, Subject, q.Get("subject"))
	assert.Equal(t, summary, q.Get("body"))
	assert.Len(t, q, 2)
}

func TestMessagingURLRoundTrip(t *testing.T) {
	summary := Summary(sample())

	for _, number := range []string{"", "447538083762"} {
		link := Builder{WhatsAppNumber: number}.MessagingURL(summary)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/"+number, u.Path)
		assert.Equal(t, Greeting+"\n\n"+summary, u.Query().Get("text"))
	}
}

func TestSummaryKeepsEveryFieldVerbatim(t *testing.T) {
	e := sample()
	u, err := url.Parse(Builder{Email: "a@b.c"}.EmailURL(Summary(e)))
	require.NoError(t, err)
	body := u.Query().Get("body")

	for _, v := range []string{e.Name, e.Email, e.Phone, e.StudyLevel, e.Intake, e.Message} {
		assert.Contains(t, body, v)
	}
}

func TestMailtoWithoutParams(t *testing.T) {
	assert.Equal(t, "mailto:info@intellecta.uk", Mailto("info@intellecta.uk", "", ""))
}

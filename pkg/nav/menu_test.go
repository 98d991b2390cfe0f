package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuToggleAndClose(t *testing.T) {
	var m Menu
	assert.Equal(t, "open", m.ToggleQuery())

	m.Toggle()
	assert.True(t, m.Open)
	assert.Equal(t, "", m.ToggleQuery())

	m.Close()
	assert.False(t, m.Open)
	m.Close()
	assert.False(t, m.Open)
}

func TestMenuScroll(t *testing.T) {
	var m Menu
	m.Scroll(4)
	assert.False(t, m.Scrolled)
	m.Scroll(4.5)
	assert.True(t, m.Scrolled)
	m.Scroll(0)
	assert.False(t, m.Scrolled)
}

func TestParse(t *testing.T) {
	assert.True(t, Parse("open").Open)
	assert.False(t, Parse("").Open)
	assert.False(t, Parse("yes").Open)
}

func TestLinksOrder(t *testing.T) {
	var labels []string
	for _, l := range Links {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Services", "Why Us", "Process", "FAQs", "Contact"}, labels)
}

package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFSHasAssets(t *testing.T) {
	for _, name := range []string{"site.css", "site.js"} {
		data, err := fs.ReadFile(StaticFS(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func script(t *testing.T) string {
	t.Helper()
	data, err := fs.ReadFile(StaticFS(), "site.js")
	require.NoError(t, err)
	return string(data)
}

func between(t *testing.T, s, from, to string) string {
	t.Helper()
	i := strings.Index(s, from)
	require.NotEqual(t, -1, i, from)
	j := strings.Index(s[i:], to)
	require.NotEqual(t, -1, j, to)
	return s[i : i+j]
}

// The submit handler never touches the status itself: spam, invalid input
// and failed requests stay idle, and only dispatch walks sending -> done -> idle.
func TestContactScriptStaysIdleUntilDispatch(t *testing.T) {
	js := script(t)
	submit := between(t, js, `form.addEventListener("submit"`, `document.addEventListener("DOMContentLoaded"`)

	assert.NotContains(t, submit, "setStatus(")
	honeypot := strings.Index(submit, "form.elements.company")
	validate := strings.Index(submit, "validate(data)")
	send := strings.Index(submit, "dispatch(")
	require.NotEqual(t, -1, honeypot)
	assert.Less(t, honeypot, validate)
	assert.Less(t, validate, send)

	dispatch := between(t, js, "function dispatch(", `form.addEventListener("submit"`)
	sending := strings.Index(dispatch, `setStatus("sending")`)
	done := strings.Index(dispatch, `setStatus("done")`)
	idle := strings.Index(dispatch, `setStatus("idle")`)
	require.NotEqual(t, -1, sending)
	assert.Less(t, sending, done)
	assert.Less(t, done, idle)
}

func TestContactScriptWorksWithoutAPI(t *testing.T) {
	js := script(t)

	assert.Contains(t, js, "if (!form.dataset.api) { dispatch(localLinks(data)); return; }")
	assert.Contains(t, js, `"https://wa.me/" + form.dataset.whatsapp`)
	assert.Contains(t, js, `"mailto:" + form.dataset.email`)
	assert.NotContains(t, js, `"/api/enquiries"`)
}

func TestHeroScriptRotatesWithoutStream(t *testing.T) {
	hero := between(t, script(t), "function initHero()", "function initFAQ()")

	assert.Contains(t, hero, "hero.dataset.heroImages")
	assert.Contains(t, hero, "hero.dataset.heroInterval")
	assert.Contains(t, hero, "setInterval(")
}

func TestRevealScriptDetachesOnceSections(t *testing.T) {
	reveal := between(t, script(t), "function initReveal()", "function initHero()")

	assert.Contains(t, reveal, "if (once) io.unobserve(el);")
	assert.Contains(t, reveal, `} else if (!once) {`)
}

package cli

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intellecta-site/pkg/config"
	"intellecta-site/pkg/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Contact.Email = "info@intellecta.uk"
	cfg.Contact.WhatsAppNumber = "447538083762"
	cfg.Contact.StatusResetDelay = 2500 * time.Millisecond
	cfg.Site.BaseURL = "https://intellecta.uk"
	cfg.Site.HeroInterval = 4500 * time.Millisecond
	cfg.CORS.AllowedOrigins = "*"
	cfg.Limits.RatePerSecond = 1
	cfg.Limits.Burst = 5
	return cfg
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(testConfig(), logger.Nop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(a.statuses.Close)
	return a
}

func TestExportWithAPI(t *testing.T) {
	a := newTestApp(t)
	out := t.TempDir()

	err := exportSite(a, &exportOptions{out: out, apiURL: "https://api.intellecta.uk/"})
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	html := string(index)
	assert.Contains(t, html, `data-api="https://api.intellecta.uk/api/enquiries"`)
	assert.Contains(t, html, `data-hero-stream="https://api.intellecta.uk/hero/stream"`)
	assert.Contains(t, html, `action="https://api.intellecta.uk/contact"`)

	for _, name := range []string{"site.css", "site.js"} {
		_, err := os.Stat(filepath.Join(out, "static", name))
		assert.NoError(t, err, name)
	}
}

func TestExportWithoutAPINeedsNoServer(t *testing.T) {
	a := newTestApp(t)
	out := t.TempDir()

	require.NoError(t, exportSite(a, &exportOptions{out: out}))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	html := string(index)
	assert.NotContains(t, html, "data-hero-stream")
	assert.NotContains(t, html, "data-api")
	assert.NotContains(t, html, `action="/contact"`)
	assert.Contains(t, html, `action="mailto:info@intellecta.uk?subject=`)
	assert.Contains(t, html, `enctype="text/plain"`)
	assert.Contains(t, html, `data-email="info@intellecta.uk"`)
	assert.Contains(t, html, `data-whatsapp="447538083762"`)
	assert.Contains(t, html, `data-hero-interval="4500"`)
	assert.Contains(t, html, `data-hero-words=`)
	assert.Contains(t, html, a.site.Hero.Images[0])
}

func TestServeShutsDownWithOpenHeroStream(t *testing.T) {
	a := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- serve(ctx, a, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/hero/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "event:slide"), line)

	start := time.Now()
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	case <-time.After(4 * time.Second):
		t.Fatal("serve did not return while a hero stream was open")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"serve", "export"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

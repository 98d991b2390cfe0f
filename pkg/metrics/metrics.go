package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeSpam     = "spam"
	OutcomeBusy     = "busy"
)

// SiteMetrics exposes counters for page renders, enquiries and hero streams.
type SiteMetrics struct {
	pageRenders   *prometheus.CounterVec
	enquiries     *prometheus.CounterVec
	invalidFields *prometheus.CounterVec
	heroStreams   prometheus.Gauge
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intellecta",
			Subsystem: "site",
			Name:      "page_renders_total",
			Help:      "Total rendered pages",
		}, []string{"status"}),
		enquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intellecta",
			Subsystem: "contact",
			Name:      "enquiries_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"channel", "outcome"}),
		invalidFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intellecta",
			Subsystem: "contact",
			Name:      "invalid_fields_total",
			Help:      "Fields that failed validation",
		}, []string{"field"}),
		heroStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "intellecta",
			Subsystem: "hero",
			Name:      "streams_active",
			Help:      "Open hero rotation streams",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.pageRenders, m.enquiries, m.invalidFields, m.heroStreams)
	return m
}

func (m *SiteMetrics) ObservePageRender(status string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(status).Inc()
}

// ObserveEnquiry counts a submission. channel is "form" or "api".
func (m *SiteMetrics) ObserveEnquiry(channel, outcome string) {
	if m == nil {
		return
	}
	m.enquiries.WithLabelValues(channel, outcome).Inc()
}

func (m *SiteMetrics) ObserveInvalidFields(fields []string) {
	if m == nil {
		return
	}
	for _, f := range fields {
		m.invalidFields.WithLabelValues(f).Inc()
	}
}

func (m *SiteMetrics) HeroStreamOpened() {
	if m == nil {
		return
	}
	m.heroStreams.Inc()
}

func (m *SiteMetrics) HeroStreamClosed() {
	if m == nil {
		return
	}
	m.heroStreams.Dec()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PagesComposed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pytech", Name: "pages_composed_total", Help: "Number of service-city pages composed."},
	)
	SitemapRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pytech", Name: "sitemap_requests_total", Help: "Number of sitemap-data requests served."},
	)
	ContactSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pytech", Name: "contact_submissions_total", Help: "Number of contact submissions recorded."},
	)
	DocumentsSeeded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pytech", Name: "documents_seeded_total", Help: "Number of documents inserted during startup seeding, by collection."},
		[]string{"collection"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pytech", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pytech", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PagesComposed)
	reg.MustRegister(SitemapRequests)
	reg.MustRegister(ContactSubmissions)
	reg.MustRegister(DocumentsSeeded)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersCreated    prometheus.Counter
	LoginAttempts   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "motorvault_users_created_total",
			Help: "Total number of users registered in the system",
		}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "motorvault_login_attempts_total",
			Help: "Login attempts by method (password, pin) and outcome (success, failure)",
		}, []string{"method", "outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "motorvault_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// IncrementUsersCreated increments the users created counter by 1.
func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

// ObserveLogin records a login attempt outcome.
func (m *Metrics) ObserveLogin(method string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.LoginAttempts.WithLabelValues(method, outcome).Inc()
}

// ObserveRequest records the latency of a completed HTTP request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
}

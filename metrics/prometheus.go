// Package metrics provides a Prometheus implementation of actor.ActorMetrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/actorcore/actor"
)

// defaultBuckets are the histogram buckets for handler-duration latency,
// in seconds.
var defaultBuckets = []float64{
	.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5,
}

// timer wraps a Prometheus histogram observer to implement actor.Timer.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) actor.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// prometheusMetrics implements actor.ActorMetrics using Prometheus.
type prometheusMetrics struct {
	mailboxDepth   *prometheus.GaugeVec
	pendingDepth   *prometheus.GaugeVec
	delivered      *prometheus.CounterVec
	dropped        *prometheus.CounterVec
	handlerPanics  *prometheus.CounterVec
	deathNotices   *prometheus.CounterVec
	handleDuration *prometheus.HistogramVec
}

// NewActorMetrics creates a new Prometheus implementation of
// actor.ActorMetrics and registers all of its collectors against reg.
func NewActorMetrics(reg prometheus.Registerer) actor.ActorMetrics {
	m := &prometheusMetrics{
		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "actorcore_mailbox_depth",
			Help: "Current length of a mailbox's incoming queue",
		}, []string{"mailbox_id"}),

		pendingDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "actorcore_pending_depth",
			Help: "Current length of a mailbox's pending (deferred) buffer",
		}, []string{"mailbox_id"}),

		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actorcore_messages_delivered_total",
			Help: "Total number of messages successfully dispatched to a handler",
		}, []string{"signature"}),

		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actorcore_messages_dropped_total",
			Help: "Total number of messages dropped because the target mailbox was dead",
		}, []string{"signature"}),

		handlerPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actorcore_handler_panics_total",
			Help: "Total number of handler panics recovered during dispatch",
		}, []string{"signature"}),

		deathNotices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actorcore_death_notifications_total",
			Help: "Total number of death notifications delivered to monitors",
		}, []string{"kind"}),

		handleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "actorcore_handle_duration_seconds",
			Help:    "Time a matched handler spent executing",
			Buckets: defaultBuckets,
		}, []string{"signature"}),
	}

	reg.MustRegister(
		m.mailboxDepth,
		m.pendingDepth,
		m.delivered,
		m.dropped,
		m.handlerPanics,
		m.deathNotices,
		m.handleDuration,
	)

	return m
}

func (m *prometheusMetrics) MailboxDepth(mailboxID string, depth int) {
	m.mailboxDepth.WithLabelValues(mailboxID).Set(float64(depth))
}

func (m *prometheusMetrics) PendingDepth(mailboxID string, depth int) {
	m.pendingDepth.WithLabelValues(mailboxID).Set(float64(depth))
}

func (m *prometheusMetrics) MessageDelivered(signature string) {
	m.delivered.WithLabelValues(signature).Inc()
}

func (m *prometheusMetrics) MessageDropped(signature string) {
	m.dropped.WithLabelValues(signature).Inc()
}

func (m *prometheusMetrics) HandlerPanic(signature string) {
	m.handlerPanics.WithLabelValues(signature).Inc()
}

func (m *prometheusMetrics) DeathNotification(kind string) {
	m.deathNotices.WithLabelValues(kind).Inc()
}

func (m *prometheusMetrics) HandleDuration(signature string) actor.Timer {
	return newTimer(m.handleDuration.WithLabelValues(signature))
}

var _ actor.ActorMetrics = (*prometheusMetrics)(nil)

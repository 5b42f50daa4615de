package metrics

import (
	"net/http"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg                 *prometheus.Registry
	Calculations        *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	MatchedRules        prometheus.Histogram
	StatusTransitions   *prometheus.CounterVec
}

var _ interfaces.IQuoteMetrics = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_calculations_total",
		Help: "Quote calculations by result.",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_calculation_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	matched := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_calc_matched_rules",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_status_transitions_total",
		Help: "Committed quote status transitions.",
	}, []string{"from", "to"})

	r.MustRegister(
		calculations, duration, matched, transitions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:                 r,
		Calculations:        calculations,
		CalculationDuration: duration,
		MatchedRules:        matched,
		StatusTransitions:   transitions,
	}
}

func (r *Registry) ObserveCalculation(result string, d time.Duration, matchedRules int) {
	r.Calculations.WithLabelValues(result).Inc()
	r.CalculationDuration.Observe(d.Seconds())
	r.MatchedRules.Observe(float64(matchedRules))
}

func (r *Registry) IncStatusTransition(from, to entities.QuoteStatus) {
	r.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_ObserveCalculation(t *testing.T) {
	r := NewRegistry()
	r.ObserveCalculation("success", 20*time.Millisecond, 3)
	r.ObserveCalculation("success", 10*time.Millisecond, 0)
	r.ObserveCalculation("conflict", time.Millisecond, 0)

	if got := testutil.ToFloat64(r.Calculations.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(r.Calculations.WithLabelValues("conflict")); got != 1 {
		t.Fatalf("expected 1 conflict, got %v", got)
	}
	if got := testutil.CollectAndCount(r.CalculationDuration); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}

func TestRegistry_IncStatusTransition(t *testing.T) {
	r := NewRegistry()
	r.IncStatusTransition(entities.QuoteStatusCalculated, entities.QuoteStatusApproved)
	r.IncStatusTransition(entities.QuoteStatusApproved, entities.QuoteStatusWarehouseCheck)

	expected := `
# HELP quote_status_transitions_total Committed quote status transitions.
# TYPE quote_status_transitions_total counter
quote_status_transitions_total{from="approved",to="warehouse_check"} 1
quote_status_transitions_total{from="calculated",to="approved"} 1
`
	if err := testutil.CollectAndCompare(r.StatusTransitions, strings.NewReader(expected)); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.ObserveCalculation("error", time.Millisecond, 0)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `quote_calculations_total{result="error"} 1`) {
		t.Fatalf("metric missing from exposition:\n%s", body)
	}
}

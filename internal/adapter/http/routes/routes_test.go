package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/handlers"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/handlers/mocks"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/middleware"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/metrics"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase, *mocks.MockIRuleUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	rules := mocks.NewMockIRuleUseCase(ctrl)
	r := NewRouter(Handlers{
		Quotes:  handlers.NewQuoteHandler(quotes),
		Rules:   handlers.NewRuleHandler(rules),
		Metrics: metrics.NewRegistry().Handler(),
	})
	return r, quotes, rules
}

func do(r *gin.Engine, method, path, role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(middleware.HeaderUserID, "user-1")
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Public(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := do(r, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/metrics", "", ""); w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
}

func TestRouter_Gating(t *testing.T) {
	cases := []struct {
		name     string
		method   string
		path     string
		role     string
		body     string
		expected int
	}{
		{"quotes without identity", http.MethodGet, "/v1/quotes", "", "", http.StatusUnauthorized},
		{"unknown role", http.MethodGet, "/v1/quotes", "guest", "", http.StatusUnauthorized},
		{"rules as manager", http.MethodGet, "/v1/rules?technique_id=1", "manager", "", http.StatusForbidden},
		{"status as warehouse", http.MethodPost, "/v1/quotes/q-1/status", "warehouse", `{"status":"approved"}`, http.StatusForbidden},
		{"warehouse decision as manager", http.MethodPost, "/v1/quotes/q-1/warehouse/confirm", "manager", `{"decision":"confirmed"}`, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _ := newTestRouter(t)
			if w := do(r, tc.method, tc.path, tc.role, tc.body); w.Code != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, w.Code)
			}
		})
	}
}

func TestRouter_Allowed(t *testing.T) {
	t.Run("admin lists rules", func(t *testing.T) {
		r, _, rules := newTestRouter(t)
		rules.EXPECT().ListByTechnique(gomock.Any(), int64(1)).Return([]entities.Rule{}, nil)

		if w := do(r, http.MethodGet, "/v1/rules?technique_id=1", "admin", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("warehouse decides", func(t *testing.T) {
		r, quotes, _ := newTestRouter(t)
		quotes.EXPECT().WarehouseDecision(gomock.Any(), entities.Actor{UserID: "user-1", Role: entities.RoleWarehouse}, "q-1", gomock.Any()).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConfirmed}, nil)

		w := do(r, http.MethodPost, "/v1/quotes/q-1/warehouse/confirm", "warehouse", `{"decision":"confirmed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("manager lists quotes", func(t *testing.T) {
		r, quotes, _ := newTestRouter(t)
		quotes.EXPECT().List(gomock.Any(), entities.QuoteFilter{}).Return(nil, usecase.ErrInvalidStatus)

		if w := do(r, http.MethodGet, "/v1/quotes", "manager", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

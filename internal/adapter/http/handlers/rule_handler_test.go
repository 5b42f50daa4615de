package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/handlers/mocks"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRuleRouter(t *testing.T) (*gin.Engine, *mocks.MockIRuleUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRuleUseCase(ctrl)
	h := NewRuleHandler(uc)

	r := gin.New()
	r.POST("/v1/rules", h.CreateRule)
	r.GET("/v1/rules", h.ListRules)
	return r, uc
}

func TestRuleHandler_CreateRule(t *testing.T) {
	t.Run("missing actions", func(t *testing.T) {
		r, _ := newRuleRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/rules", `{"technique_id":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, _ := newRuleRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/rules", `{"technique_id":1,"actions":[{"sku_id":1}],"active_from":"01.02.2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		err      error
		expected int
	}{
		{usecase.ErrTechniqueNotFound, http.StatusNotFound},
		{usecase.ErrSKUNotFound, http.StatusUnprocessableEntity},
		{usecase.ErrInvalidRuleCondition, http.StatusUnprocessableEntity},
		{usecase.ErrInvalidRuleActions, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			r, uc := newRuleRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Rule{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/rules", `{"technique_id":1,"actions":[{"sku_id":1}]}`)
			if w.Code != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newRuleRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateRuleCommand) (entities.Rule, error) {
				if cmd.TechniqueID != 1 || string(cmd.Conditions) != `{"engine":"D6"}` || cmd.ActiveTo == nil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Rule{ID: 10, TechniqueID: 1, Conditions: cmd.Conditions, Actions: cmd.Actions, Version: 1, Active: true}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/rules", `{"technique_id":1,"conditions":{"engine":"D6"},"actions":[{"sku_id":1}],"active_to":"2026-12-31"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestRuleHandler_ListRules(t *testing.T) {
	t.Run("missing technique id", func(t *testing.T) {
		r, _ := newRuleRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/rules", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRuleRouter(t)
		uc.EXPECT().ListByTechnique(gomock.Any(), int64(4)).Return([]entities.Rule{{ID: 1, TechniqueID: 4, Version: 2, Active: true}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/rules?technique_id=4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

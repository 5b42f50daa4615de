package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "github.com/alexVinter/fire-dynamics1/internal/adapter/http/dto/request"
	response "github.com/alexVinter/fire-dynamics1/internal/adapter/http/dto/response"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"
	"github.com/alexVinter/fire-dynamics1/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)
)

type RuleHandler struct {
	usecase usecase.IRuleUseCase
}

func NewRuleHandler(uc usecase.IRuleUseCase) *RuleHandler {
	return &RuleHandler{usecase: uc}
}

// CreateRule godoc
// @Summary  Create a calculation rule (admin)
// @Tags     rules
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateRuleRequest true "Rule"
// @Success  201 {object} response.RuleResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var payload request.CreateRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRulePayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_RULE_INPUT", err.Error(), err, http.StatusBadRequest))
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapRuleError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromRule(rule))
}

// ListRules godoc
// @Summary  List active rules of a technique, highest version first (admin)
// @Tags     rules
// @Produce  json
// @Param    technique_id query int true "Technique ID"
// @Success  200 {array} response.RuleResponse
// @Router   /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	techniqueID, err := strconv.ParseInt(c.Query("technique_id"), 10, 64)
	if err != nil {
		writeError(c, errInvalidQuery)
		return
	}

	rules, err := h.usecase.ListByTechnique(c.Request.Context(), techniqueID)
	if err != nil {
		writeError(c, mapRuleError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRules(rules))
}

func mapRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechniqueID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechniqueNotFound):
		return pkg.NewDomainErrorSimple("TECHNIQUE_NOT_FOUND", "Technique not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSKUNotFound),
		errors.Is(err, usecase.ErrInvalidRuleCondition),
		errors.Is(err, usecase.ErrInvalidRuleActions),
		errors.Is(err, usecase.ErrInvalidRuleVersion),
		errors.Is(err, usecase.ErrInvalidRuleWindow):
		return pkg.NewDomainError("INVALID_RULE", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

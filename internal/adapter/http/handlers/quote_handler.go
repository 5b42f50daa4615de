package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "github.com/alexVinter/fire-dynamics1/internal/adapter/http/dto/request"
	response "github.com/alexVinter/fire-dynamics1/internal/adapter/http/dto/response"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/middleware"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"
	"github.com/alexVinter/fire-dynamics1/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidQuery        = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errMissingActor        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
)

// QuoteHandler handles HTTP requests for quotes, their calculation and workflow.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Create a quote in draft
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateQuoteRequest true "Quote"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_QUOTE_INPUT", err.Error(), err, http.StatusBadRequest))
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary  List quotes, newest update first
// @Tags     quotes
// @Produce  json
// @Param    status    query string false "Status"
// @Param    search    query string false "Customer name substring"
// @Param    date_from query string false "YYYY-MM-DD"
// @Param    date_to   query string false "YYYY-MM-DD"
// @Success  200 {array} response.QuoteListItemResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var query request.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, errInvalidQuery)
		return
	}

	quotes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteList(quotes))
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote godoc
// @Summary  Partially update an editable quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string true "Quote ID"
// @Param    payload body request.UpdateQuoteRequest true "Fields to change"
// @Success  200 {object} response.QuoteResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_QUOTE_INPUT", err.Error(), err, http.StatusBadRequest))
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), cmd)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CalculateQuote godoc
// @Summary  Run the rule engine and replace the result lines
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.CalcResultResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/calculate [post]
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	res, err := h.usecase.Calculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(res))
}

// ListCalcRuns godoc
// @Summary  List calculation audit records
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {array} response.CalcRunResponse
// @Router   /quotes/{id}/calc-runs [get]
func (h *QuoteHandler) ListCalcRuns(c *gin.Context) {
	runs, err := h.usecase.ListCalcRuns(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalcRuns(runs))
}

// GetResultLines godoc
// @Summary  Get the calculated bill of materials
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {array} response.ResultLineResponse
// @Router   /quotes/{id}/result [get]
func (h *QuoteHandler) GetResultLines(c *gin.Context) {
	lines, err := h.usecase.GetResultLines(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromResultLines(lines))
}

// PatchResultLine godoc
// @Summary  Edit qty (admin) or note of a result line
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string true "Quote ID"
// @Param    line_id path string true "Line ID"
// @Param    payload body request.PatchResultLineRequest true "Fields to change"
// @Success  200 {object} response.ResultLineResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /quotes/{id}/result/{line_id} [patch]
func (h *QuoteHandler) PatchResultLine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.PatchResultLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	line, err := h.usecase.PatchResultLine(c.Request.Context(), actor, payload.ToCommand(c.Param("id"), c.Param("line_id")))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromResultLine(line))
}

// ChangeStatus godoc
// @Summary  Move a quote through its lifecycle
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string true "Quote ID"
// @Param    payload body request.ChangeStatusRequest true "Target status"
// @Success  200 {object} response.StatusResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/status [post]
func (h *QuoteHandler) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.ChangeStatus(c.Request.Context(), actor, c.Param("id"), entities.QuoteStatus(strings.TrimSpace(payload.Status)), payload.Comment)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteStatus(q))
}

// WarehouseDecision godoc
// @Summary  Confirm or send back a quote under warehouse check
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string true "Quote ID"
// @Param    payload body request.WarehouseDecisionRequest true "Decision and line availability"
// @Success  200 {object} response.StatusResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/warehouse/confirm [post]
func (h *QuoteHandler) WarehouseDecision(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.WarehouseDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.WarehouseDecision(c.Request.Context(), actor, c.Param("id"), payload.ToCommand())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteStatus(q))
}

// ExportXLSX godoc
// @Summary  Download the result lines as XLSX
// @Tags     quotes
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id path string true "Quote ID"
// @Success  200 {file} binary
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/export/xlsx [post]
func (h *QuoteHandler) ExportXLSX(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	data, err := h.usecase.Export(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote_%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxMIME, data)
}

func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errMissingActor)
		return entities.Actor{}, false
	}
	return actor, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteItems):
		return pkg.NewDomainError("INVALID_QUOTE_ITEMS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResultLineNotFound):
		return pkg.NewDomainError("RESULT_LINE_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this caller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote cannot be edited in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotCalculable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CALCULABLE", "Quote cannot be calculated in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConcurrentUpdate):
		return pkg.NewDomainErrorSimple("QUOTE_CONCURRENT_UPDATE", "Quote was modified by another request, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrResultFrozen):
		return pkg.NewDomainErrorSimple("RESULT_FROZEN", "Result lines of a confirmed quote cannot be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoResultLines):
		return pkg.NewDomainErrorSimple("NO_RESULT_LINES", "Quote has no result lines, calculate first", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQty), errors.Is(err, usecase.ErrInvalidDecision), errors.Is(err, usecase.ErrInvalidAvailability):
		return pkg.NewDomainError("UNPROCESSABLE", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

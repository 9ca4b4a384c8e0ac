package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/notifier"
)

// Collector computes a report for one coin.
type Collector interface {
	Collect(ctx context.Context, coinID string) (*model.Report, error)
}

// Handler serves the dashboard, the JSON API and health checks.
type Handler struct {
	collector   Collector
	logger      *logger.Logger
	page        *Page
	defaultCoin string
}

func NewHandler(col Collector, log *logger.Logger, defaultCoin string) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		collector:   col,
		logger:      log,
		page:        NewPage(),
		defaultCoin: collector.NormalizeCoinID(defaultCoin),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/indicators", h.Indicators)
}

// APIResponse is the JSON envelope of every API reply.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError tags a failure so clients can branch on Code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes of APIError.
const (
	CodeEmptyInput    = "EMPTY_INPUT"
	CodeUpstreamFetch = "UPSTREAM_FETCH"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternal      = "INTERNAL"
)

// classify maps a collection error to its HTTP status and code.
func classify(err error) (int, string) {
	var empty *collector.EmptyInputError
	var upstream *collector.UpstreamFetchError
	switch {
	case errors.As(err, &empty):
		return http.StatusNotFound, CodeEmptyInput
	case errors.As(err, &upstream):
		return http.StatusBadGateway, CodeUpstreamFetch
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func (h *Handler) Dashboard(c echo.Context) error {
	req := &DashboardRequest{}
	if err := bindRequest(c, req, h.defaultCoin); err != nil {
		return c.String(http.StatusBadRequest, describeValidation(err))
	}

	rep, err := h.collector.Collect(c.Request().Context(), req.Coin)
	if err != nil {
		status, _ := classify(err)
		return c.String(status, collector.Describe(err))
	}

	if req.Format == "text" {
		return c.String(http.StatusOK, notifier.FormatSummary(rep))
	}
	body, err := h.page.Render(rep)
	if err != nil {
		h.logger.Error("render dashboard failed", logger.String("coin", rep.CoinID), logger.Error(err))
		return c.String(http.StatusInternalServerError, "Failed to render dashboard.")
	}
	return c.HTMLBlob(http.StatusOK, body)
}

func (h *Handler) Indicators(c echo.Context) error {
	req := &DashboardRequest{}
	if err := bindRequest(c, req, h.defaultCoin); err != nil {
		return c.JSON(http.StatusBadRequest, APIResponse{
			Status:  http.StatusBadRequest,
			Message: http.StatusText(http.StatusBadRequest),
			Error:   &APIError{Code: CodeBadRequest, Message: describeValidation(err)},
		})
	}

	rep, err := h.collector.Collect(c.Request().Context(), req.Coin)
	if err != nil {
		status, code := classify(err)
		return c.JSON(status, APIResponse{
			Status:  status,
			Message: http.StatusText(status),
			Error:   &APIError{Code: code, Message: collector.Describe(err)},
		})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(http.StatusOK, APIResponse{
		Status:  http.StatusOK,
		Message: http.StatusText(http.StatusOK),
		Data:    rep,
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/natal-go/internal/app"
	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

const (
	maxBodyBytes     = 64 << 10
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	svc    *app.ChartService
	logger *slog.Logger
}

func NewHandler(svc *app.ChartService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/charts", h.CreateChart)
	e.GET("/v1/charts", h.ListCharts)
	e.GET("/v1/charts/usage", h.Usage)
	e.GET("/v1/charts/:id", h.GetChart)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateChart(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return mapError(c, h.logger, err)
	}
	if len(body) > maxBodyBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
	}

	req, err := DecodeChartRequest(body)
	if err != nil {
		return mapError(c, h.logger, err)
	}

	resp, err := h.svc.ComputeChart(c.Request().Context(), req)
	if err != nil {
		return mapError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, NewChartResponse(resp.Chart, requestID(c), resp.LatencyMS))
}

func (h *Handler) GetChart(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   domain.ErrInvalidRequest.Error(),
			Details: []domain.FieldError{{Field: "id", Message: "must be a UUID"}},
		})
	}

	chart, err := h.svc.GetChart(c.Request().Context(), id)
	if err != nil {
		return mapError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, NewChartResponse(chart, requestID(c), 0))
}

func (h *Handler) ListCharts(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxListLimit {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   domain.ErrInvalidRequest.Error(),
				Details: []domain.FieldError{{Field: "limit", Message: "must be an integer between 1 and 100"}},
			})
		}
		limit = parsed
	}

	summaries, err := h.svc.RecentCharts(c.Request().Context(), limit)
	if err != nil {
		return mapError(c, h.logger, err)
	}

	out := ChartListResponse{Charts: make([]ChartSummaryResp, len(summaries))}
	for i, s := range summaries {
		out.Charts[i] = toSummaryResp(s)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Usage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Natal chart API is live",
		"usage": map[string]any{
			"endpoint": "/v1/charts",
			"method":   http.MethodPost,
			"body": map[string]any{
				"datetime":               "1990-06-15T18:30:00.000Z",
				"latitude":               40.7128,
				"longitude":              -74.0060,
				"includeInterpretations": true,
			},
			"response": "Returns the birth chart with planets, houses, aspects and interpretations",
		},
	})
}

// DecodeChartRequest parses a POST /v1/charts body, collecting every
// offending field into a single *domain.ValidationError.
func DecodeChartRequest(body []byte) (app.ChartRequest, error) {
	var verr domain.ValidationError

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		verr.Add("body", "must be a JSON object")
		return app.ChartRequest{}, verr.Err()
	}

	req := app.ChartRequest{IncludeInterpretations: true, Source: ports.SourceRequest}

	var datetime string
	if v, ok := raw["datetime"]; !ok || isNull(v) {
		verr.Add("datetime", "is required")
	} else if err := json.Unmarshal(v, &datetime); err != nil {
		verr.Add("datetime", "must be a string")
	} else if t, err := domain.ParseInstant(datetime); err != nil {
		appendFields(&verr, err)
	} else {
		req.Instant = t
	}

	latOK := decodeNumber(raw, "latitude", &req.Latitude, &verr)
	lonOK := decodeNumber(raw, "longitude", &req.Longitude, &verr)
	if latOK && lonOK {
		appendFields(&verr, domain.ValidateLocation(req.Latitude, req.Longitude))
	} else if latOK {
		appendFields(&verr, domain.ValidateLocation(req.Latitude, 0))
	} else if lonOK {
		appendFields(&verr, domain.ValidateLocation(0, req.Longitude))
	}

	if v, ok := raw["includeInterpretations"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &req.IncludeInterpretations); err != nil {
			verr.Add("includeInterpretations", "must be a boolean")
		}
	}

	if err := verr.Err(); err != nil {
		return app.ChartRequest{}, err
	}
	return req, nil
}

func decodeNumber(raw map[string]json.RawMessage, field string, dst *float64, verr *domain.ValidationError) bool {
	v, ok := raw[field]
	if !ok || isNull(v) {
		verr.Add(field, "is required")
		return false
	}
	if err := json.Unmarshal(v, dst); err != nil {
		verr.Add(field, "must be a number")
		return false
	}
	return true
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func appendFields(dst *domain.ValidationError, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		dst.Fields = append(dst.Fields, verr.Fields...)
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func mapError(c echo.Context, logger *slog.Logger, err error) error {
	reqID := requestID(c)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidRequest.Error(), Details: verr.Fields})
	case errors.Is(err, domain.ErrChartNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrChartNotFound.Error()})
	case errors.Is(err, domain.ErrNoPositions):
		logger.Error("ephemeris unavailable", "request_id", reqID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "ephemeris unavailable"})
	default:
		logger.Error("internal error", "request_id", reqID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

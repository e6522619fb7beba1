package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront/business/recommendation"
	"storefront/domain"
	"storefront/pkg/logger"

	"github.com/labstack/echo/v4"
)

const maxEvaluateBody = 4 << 20

type (
	RecommendationHandler struct {
		recoService RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, req recommendation.Request) (domain.RecommendationResult, error)
		Evaluate(ctx context.Context, in recommendation.Input) domain.RecommendationResult
	}

	RecommendationQuery struct {
		CurrentProductID   string `query:"currentProductId"`
		Limit              string `query:"limit"`
		ExcludedProductIDs string `query:"excludedProductIds"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recoService: svc,
	}
}

// Recommend serves storefront recommendations. Authentication is optional;
// a malformed limit falls back to the default.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	req := recommendation.Request{
		CurrentProductID:   domain.ID(strings.TrimSpace(q.CurrentProductID)),
		ExcludedProductIDs: splitIDs(q.ExcludedProductIDs),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Limit)); err == nil {
		req.Limit = n
	}
	if uid, ok := c.Get("user_id").(uint); ok {
		req.UserID = &uid
	}

	res, err := h.recoService.Recommend(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to build recommendations", "trace_id", recommendation.TraceIDFromContext(c.Request().Context()), "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load recommendations"})
	}

	return c.JSON(http.StatusOK, res)
}

// Evaluate runs the engine on the input document in the request body.
func (h *RecommendationHandler) Evaluate(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxEvaluateBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	in, err := recommendation.DecodeInput(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, h.recoService.Evaluate(c.Request().Context(), in))
}

func splitIDs(csv string) []domain.ID {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]domain.ID, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, domain.ID(p))
		}
	}
	return ids
}

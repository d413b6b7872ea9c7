package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// ReviewHandlers handles HTTP requests for product reviews and replies.
type ReviewHandlers struct {
	reviewService services.ReviewServiceInterface
}

// NewReviewHandlers creates a new review handlers instance.
func NewReviewHandlers(reviewService services.ReviewServiceInterface) *ReviewHandlers {
	return &ReviewHandlers{reviewService: reviewService}
}

// ListProductReviews handles GET /api/products/:id/reviews
func (h *ReviewHandlers) ListProductReviews(c echo.Context) error {
	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	reviews, err := h.reviewService.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	})
}

// CreateReview handles POST /api/products/:id/reviews
func (h *ReviewHandlers) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Rating int    `json:"rating"`
		Body   string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	review, err := h.reviewService.CreateReview(ctx, userID, productID, req.Rating, req.Body)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// DeleteReview handles DELETE /api/reviews/:id
func (h *ReviewHandlers) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	reviewID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.reviewService.DeleteReview(ctx, userID, reviewID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Review deleted",
	})
}

// CreateReply handles POST /api/reviews/:id/replies
func (h *ReviewHandlers) CreateReply(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	reviewID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	reply, err := h.reviewService.CreateReply(ctx, userID, reviewID, req.Body)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, reply)
}

// DeleteReply handles DELETE /api/replies/:id
func (h *ReviewHandlers) DeleteReply(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	replyID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.reviewService.DeleteReply(ctx, userID, replyID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Reply deleted",
	})
}

package api

import (
	"net/http"

	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	q queries.ItemQueries
}

func NewItemHandler(q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{q: q}
}

// @Summary Get item
// @Description Item details. The last and next approved bookings are filled only for the owner.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemBookingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	itemID, err := parseID(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid item id")
		return
	}

	view, err := h.q.ProjectItemBookings(c.Request.Context(), itemID, userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromItemBookingsView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List owned items
// @Description Every item the caller owns with its last and next approved bookings
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ItemBookingsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/items [get]
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	views, err := h.q.ListOwnerItemBookings(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromItemBookingsViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

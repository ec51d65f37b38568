package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds            commands.BookingCommands
	q               queries.BookingQueries
	defaultPageSize int
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{
		cmds:            cmds,
		q:               q,
		defaultPageSize: cfg.Paging.DefaultSize,
	}
}

// @Summary Create booking
// @Description Request a booking of an item for a time slot. The booking starts in WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	h.respondBooking(c, http.StatusCreated, view)
}

// @Summary Approve or reject booking
// @Description The item owner decides a WAITING booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	bookingID, err := parseID(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid booking id")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		abortInvalidRequest(c, err, "approved must be true or false")
		return
	}

	view, err := h.cmds.DecideBooking(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	h.respondBooking(c, http.StatusOK, view)
}

// @Summary Get booking
// @Description Visible to the booker and to the owner of the booked item
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	bookingID, err := parseID(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid booking id")
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	h.respondBooking(c, http.StatusOK, view)
}

// @Summary List own bookings
// @Description Bookings made by the caller, newest start first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING, APPROVED, REJECTED or CANCELLED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.list(c, h.q.ListAsBooker)
}

// @Summary List bookings of owned items
// @Description Bookings of every item the caller owns, newest start first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING, APPROVED, REJECTED or CANCELLED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.q.ListAsOwner)
}

type listFunc func(ctx context.Context, subjectID int64, req queries.ListRequest) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, fetch listFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err, "Invalid query parameters")
		return
	}

	views, err := fetch(c.Request.Context(), userID, q.ToListRequest(h.defaultPageSize))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BookingHandler) respondBooking(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, res)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockItemQueries
	handler     *api.ItemHandler
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.handler = api.NewItemHandler(s.mockQueries)

	s.router.Use(fakeAuth)
	s.router.GET("/items", s.handler.ListOwnerItems)
	s.router.GET("/items/:id", s.handler.GetItem)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func ownerItemView() *queries.ItemBookingsView {
	last := builder.NewBookingBuilder().WithID(4).AsApproved()
	last.Start = builder.BaseTime.Add(-3 * time.Hour)
	last.End = builder.BaseTime.Add(-2 * time.Hour)
	lastBooking := last.BuildStored()
	next := builder.NewBookingBuilder().WithID(5).AsApproved().BuildStored()

	return &queries.ItemBookingsView{
		ID:          10,
		OwnerID:     authedUserID,
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		LastBooking: &queries.BookingShortView{ID: lastBooking.ID(), BookerID: lastBooking.BookerID(), Start: lastBooking.Start(), End: lastBooking.End()},
		NextBooking: &queries.BookingShortView{ID: next.ID(), BookerID: next.BookerID(), Start: next.Start(), End: next.End()},
	}
}

// ================================================================================
// TestGetItem
// ================================================================================

func (s *ItemHandlerTestSuite) TestGetItem() {
	s.Run("success: owner sees last and next bookings", func() {
		view := ownerItemView()
		s.mockQueries.EXPECT().ProjectItemBookings(gomock.Any(), int64(10), authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/10", nil, "bearer-token")

		var res resdto.ItemBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(10), res.ID)
		s.Require().NotNil(res.LastBooking)
		s.Require().NotNil(res.NextBooking)
		s.Equal(int64(4), res.LastBooking.ID)
		s.Equal(int64(5), res.NextBooking.ID)
		s.True(view.NextBooking.Start.Equal(res.NextBooking.Start))
	})

	s.Run("success: non-owner gets null projections", func() {
		view := &queries.ItemBookingsView{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
		s.mockQueries.EXPECT().ProjectItemBookings(gomock.Any(), int64(10), authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/10", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(body, "last_booking")
		s.Nil(body["last_booking"])
		s.Nil(body["next_booking"])
	})

	s.Run("error: 400 Bad Request for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/x", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item id")
	})

	s.Run("error: 404 Not Found for missing item", func() {
		s.mockQueries.EXPECT().ProjectItemBookings(gomock.Any(), int64(99), authedUserID).
			Return(nil, errs.NotFound(shared.ErrItemNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/99", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "item not found")
	})
}

// ================================================================================
// TestListOwnerItems
// ================================================================================

func (s *ItemHandlerTestSuite) TestListOwnerItems() {
	s.Run("success: returns every owned item", func() {
		second := &queries.ItemBookingsView{ID: 11, OwnerID: authedUserID, Name: "Ladder"}
		s.mockQueries.EXPECT().ListOwnerItemBookings(gomock.Any(), authedUserID).
			Return([]*queries.ItemBookingsView{ownerItemView(), second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "bearer-token")

		var res []resdto.ItemBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal(int64(10), res[0].ID)
		s.Equal("Ladder", res[1].Name)
		s.Nil(res[1].LastBooking)
	})

	s.Run("error: 404 Not Found for unknown owner", func() {
		s.mockQueries.EXPECT().ListOwnerItemBookings(gomock.Any(), authedUserID).
			Return(nil, errs.NotFound(shared.ErrUserNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

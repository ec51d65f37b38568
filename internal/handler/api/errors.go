package api

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.New("id must be a positive integer")

// abortWithUsecaseError maps an error category to its HTTP status. Client errors keep their
// message; anything uncategorized is reported as a 500 without detail.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user id in context"), "Unauthorized", nil)
}

// abortInvalidRequest reports malformed input. The binding or parse failure goes out as detail.
func abortInvalidRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, gin.H{"reason": err.Error()})
}

package httperr

import (
	"errors"
	"net/http"

	"kalam-platform/internal/domain/errs"

	"github.com/gin-gonic/gin"
)

// Write maps a domain error to an HTTP response. Handlers never branch on
// status codes themselves.
func Write(c *gin.Context, err error) {
	var (
		validation    *errs.ValidationError
		authorization *errs.AuthorizationError
		notFound      *errs.NotFoundError
		transition    *errs.InvalidTransition
		precondition  *errs.PreconditionError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &authorization):
		c.JSON(http.StatusForbidden, gin.H{"error": authorization.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"error":            transition.Error(),
			"current_status":   transition.Current,
			"requested_status": transition.Requested,
		})
	case errors.As(err, &precondition):
		c.JSON(http.StatusConflict, gin.H{
			"error":          precondition.Error(),
			"current_status": precondition.Current,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

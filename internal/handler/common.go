package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-airport-booking/internal/middleware"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// IDParam parses the :id path segment; on failure it writes the 400 itself.
func IDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, err
	}
	return id, nil
}

// CurrentUserID reads the authenticated user id set by the JWT middleware.
func CurrentUserID(c *gin.Context) (int, bool) {
	value, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}

// respondValidationError writes a field-scoped 400 for validation failures
// and reports whether err was one.
func respondValidationError(c *gin.Context, err error) bool {
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{
		verr.Field: verr.Message,
	})
	return true
}

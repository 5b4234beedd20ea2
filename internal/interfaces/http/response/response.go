package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "care-connect.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr, ok := err.(*domainerrors.AppError)
	if !ok {
		appErr = domainerrors.InternalError(err)
	}

	message := appErr.Message
	if appErr.Code == http.StatusInternalServerError {
		// Never leak internal details to the caller
		message = "internal server error"
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": message,
	})
}

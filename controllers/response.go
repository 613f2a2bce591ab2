package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/solocoffee/pos-api/apperrors"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError maps a core failure onto the error envelope, translating the
// error code range into a transport status. Errors without a code surface
// as SYSTEM_ERROR.
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	message := err.Error()
	if code == apperrors.CodeSystemError && apperrors.From(err) == nil {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		message = "internal server error"
	}

	c.JSON(apperrors.HTTPStatus(code), gin.H{
		"success": false,
		"error": gin.H{
			"code":    code.String(),
			"message": message,
		},
	})
}

// respondValidationError reports a malformed request body or parameter.
func respondValidationError(c *gin.Context, detail string) {
	c.JSON(apperrors.HTTPStatus(apperrors.CodeValidation), gin.H{
		"success": false,
		"error": gin.H{
			"code":    apperrors.CodeValidation.String(),
			"message": "Invalid request data",
			"details": detail,
		},
	})
}

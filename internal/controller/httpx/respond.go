// Package httpx maps service errors onto HTTP responses.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
	"github.com/rs/zerolog/log"
)

// Error writes the response for err. Validation errors become 400, missing
// records 404, rejected credentials 401 and everything else a 500 carrying
// the underlying message in details.
func Error(ctx *gin.Context, err error, message string) {
	var validation *service.ValidationError
	var unauthorized *service.UnauthorizedError
	var notFound interface{ NotFound() }

	switch {
	case errors.As(err, &validation):
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Rejected invalid request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validation.Message})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &unauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: unauthorized.Message})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: message, Details: err.Error()})
	}
}

// BindError reports a request body that failed binding or validation tags.
func BindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: err.Error()})
}

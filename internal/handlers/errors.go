package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barbercloud/agenda-api/internal/httperr"
)

// writeBusinessError maps usecase errors onto the HTTP surface: reference,
// validation, conflict and state errors are client faults; anything else is
// a persistence failure reported generically.
func writeBusinessError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeInvalidReference:
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Invalid entity reference.")
	case httperr.CodeSlotConflict:
		httperr.BadRequest(c, httperr.CodeSlotConflict, "The slot is already booked.")
	case httperr.CodeValidation:
		httperr.BadRequest(c, httperr.CodeValidation, "Missing or out-of-range field.")
	case httperr.CodeInvalidState:
		httperr.BadRequest(c, httperr.CodeInvalidState, "Appointment is no longer scheduled.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "Record not found.")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("persistence failure")
		httperr.Internal(c, httperr.CodePersistence, "Internal error.")
	}
}

// writeBindError classifies a JSON binding failure: a wrong type on an id
// field is a malformed reference, everything else is a validation error.
func writeBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && strings.HasSuffix(typeErr.Field, "_id") {
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Malformed identifier.")
		return
	}
	httperr.BadRequest(c, httperr.CodeValidation, "Invalid request body.")
}

package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"impulsa/backend/internal/common"
)

// Stable error codes surfaced to the UI collaborator. The localized message
// travels alongside; clients may key on either.
const (
	codeSelfReference     = "SELF_REFERENCE"
	codeDuplicate         = "DUPLICATE_ACTIVE_CONNECTION"
	codeNotFound          = "NOT_FOUND"
	codeForbidden         = "FORBIDDEN"
	codeInvalidTransition = "INVALID_TRANSITION"
	codeNotConnected      = "NOT_CONNECTED"
	codeValidationFailed  = "VALIDATION_FAILED"
	codeInternal          = "INTERNAL"
)

func classify(err error) (string, int) {
	switch {
	case errors.Is(err, common.ErrSelfReference):
		return codeSelfReference, http.StatusBadRequest
	case errors.Is(err, common.ErrConnectionExists):
		return codeDuplicate, http.StatusConflict
	case errors.Is(err, common.ErrNotFound):
		return codeNotFound, http.StatusNotFound
	case errors.Is(err, common.ErrForbidden):
		return codeForbidden, http.StatusForbidden
	case errors.Is(err, common.ErrInvalidTransition):
		return codeInvalidTransition, http.StatusConflict
	case errors.Is(err, common.ErrNotConnected):
		return codeNotConnected, http.StatusForbidden
	case errors.Is(err, common.ErrEmptyContent),
		errors.Is(err, common.ErrContentTooLong),
		errors.Is(err, common.ErrInvalidContext),
		errors.Is(err, common.ErrInvalidCursor),
		errors.Is(err, common.ErrInvalidDecision),
		errors.Is(err, common.ErrInvalidFilter),
		errors.Is(err, common.ErrEmptyName):
		return codeValidationFailed, http.StatusBadRequest
	}
	return codeInternal, http.StatusInternalServerError
}

// fail renders a domain error as the standard envelope with a localized
// message. Unrecognized errors are infrastructure failures: logged here,
// surfaced as a generic 500.
func (h *Handler) fail(c *gin.Context, err error) {
	code, status := classify(err)
	if code == codeInternal {
		log.Printf("ERROR: Unhandled failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	message := h.Localizer.GetString(requestLanguage(c), "error."+strings.ToLower(code))
	common.ErrorResponse(c, status, code, message)
}

// failValidation renders a request-binding failure.
func (h *Handler) failValidation(c *gin.Context) {
	message := h.Localizer.GetString(requestLanguage(c), "error.validation_failed")
	common.ErrorResponse(c, http.StatusBadRequest, codeValidationFailed, message)
}

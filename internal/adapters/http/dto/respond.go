package dto

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/domain"
)

// contextKeyTraceID is the gin context key the tracing middleware uses.
const contextKeyTraceID = "trace_id"

// headerRequestID is the fallback header when no trace ID is in context.
const headerRequestID = "X-Request-ID"

// GetTraceID extracts a trace identifier for error responses.
// Prefers the trace ID placed in the gin context by middleware, falling
// back to the inbound request ID header.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get(contextKeyTraceID); exists {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.GetHeader(headerRequestID)
}

// HandleError writes a domain error as the standard error envelope.
// Unknown errors become a generic 500 so internals never leak.
func HandleError(c *gin.Context, err error) {
	status, resp := errorResponseFor(err)
	resp.TraceID = GetTraceID(c)

	c.JSON(status, resp)
}

// AbortWithError aborts the request chain and writes the standard error
// envelope. For use in middleware, where later handlers must not run.
func AbortWithError(c *gin.Context, err error) {
	status, resp := errorResponseFor(err)
	resp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(status, resp)
}

// errorResponseFor is the single mapping from errors to the wire
// envelope. The HTTP status is always derived from the error code so
// the two cannot drift apart.
func errorResponseFor(err error) (int, *ErrorResponse) {
	resp := responseFor(err)

	return HTTPStatusFromCode(resp.Error.Code), resp
}

func responseFor(err error) *ErrorResponse {
	switch {
	case errors.Is(err, ErrBinding), errors.Is(err, ErrValidation):
		if details := ValidationErrors(err); len(details) > 0 {
			return NewErrorResponseWithDetails(
				ErrorCodeValidation,
				"request validation failed",
				details,
			)
		}

		return NewErrorResponse(ErrorCodeValidation, "request validation failed")

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			return NewErrorResponseWithDetails(
				ErrorCodeValidation,
				err.Error(),
				map[string]string{validationErr.Field: validationErr.Message},
			)
		}

		return NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsUnauthenticated(err):
		return NewErrorResponse(ErrorCodeUnauthenticated, err.Error())

	case domain.IsMalformedCompletion(err):
		return NewErrorResponse(ErrorCodeUpstream, err.Error())

	case domain.IsUnavailable(err):
		return NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		// Unknown errors get a generic message to avoid leaking internals.
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

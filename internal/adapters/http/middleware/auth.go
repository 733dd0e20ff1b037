package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/dto"
	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/config"
)

const (
	// ContextKeyIdentity is the gin context key for the extracted identity.
	ContextKeyIdentity = "identity"

	// Default header names if not configured.
	defaultSubjectHeader = "X-User-ID"
	defaultEmailHeader   = "X-User-Email"
)

// Identity is the caller identity extracted from gateway headers.
// The gateway in front of this service validates the user's token and
// forwards the verified subject and email; this service never sees the
// token itself.
type Identity struct {
	// Subject is the user ID (sub claim).
	Subject string

	// Email is the user's email, needed only by the billing sync path.
	Email string
}

// ExtractIdentity extracts the caller identity from request headers.
// Header names are configurable via AuthConfig.
func ExtractIdentity(c *gin.Context, cfg *config.AuthConfig) *Identity {
	subjectHeader := defaultSubjectHeader
	emailHeader := defaultEmailHeader

	if cfg != nil {
		if cfg.SubjectHeader != "" {
			subjectHeader = cfg.SubjectHeader
		}

		if cfg.EmailHeader != "" {
			emailHeader = cfg.EmailHeader
		}
	}

	return &Identity{
		Subject: c.GetHeader(subjectHeader),
		Email:   c.GetHeader(emailHeader),
	}
}

// GetIdentity retrieves the identity from the gin context.
// Returns nil if no identity is present.
func GetIdentity(c *gin.Context) *Identity {
	if v, exists := c.Get(ContextKeyIdentity); exists {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}

	return nil
}

// RequireIdentity returns middleware that requires an authenticated
// caller. Requests without a subject are rejected before any handler
// runs; no downstream call is ever made on behalf of an anonymous
// request.
func RequireIdentity(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := ExtractIdentity(c, cfg)

		if identity.Subject == "" {
			dto.AbortWithError(c, fmt.Errorf("%w: authentication required", domain.ErrUnauthenticated))
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joshzacharytan/about-me/internal/app/ds"
)

const currentUserKey = "current_user"

// WithCurrentUser resolves the optional authenticated user from the
// session cookie. Every failure mode is silent: a bad or revoked token
// just means the request proceeds anonymously.
func (h *Handler) WithCurrentUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := h.Sessions.Parse(ctx)
		if err != nil {
			ctx.Next()
			return
		}

		revoked, err := h.Repository.IsSessionRevoked(ctx.Request.Context(), claims.Id)
		if err != nil {
			logrus.Errorf("session revocation check failed: %v", err)
			ctx.Next()
			return
		}
		if revoked {
			ctx.Next()
			return
		}

		// The user may have been deleted since the token was issued.
		user, err := h.Repository.GetUserByID(claims.UserID)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// currentUser returns the authenticated user for this request, or nil.
func currentUser(ctx *gin.Context) *ds.User {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(ds.User)
	if !ok {
		return nil
	}
	return &user
}

// remainingTTL is how long a parsed token is still good for, used as
// the blacklist expiration on logout.
func remainingTTL(claims *ds.SessionClaims) time.Duration {
	return time.Until(time.Unix(claims.ExpiresAt, 0))
}

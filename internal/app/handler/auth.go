package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joshzacharytan/about-me/internal/app/repository"
)

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterUser creates the account, logs the new user straight in and
// sends them to the comment board. A taken username is a hard 400.
func (h *Handler) RegisterUser(ctx *gin.Context) {
	var form credentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.CreateUser(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if err := h.Sessions.Establish(ctx, user.ID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("registered user %q", user.Username)
	ctx.Redirect(http.StatusSeeOther, "/comments")
}

// LoginUser fails soft: a bad username and a bad password both re-render
// the login page with the error banner, so the response never says which
// one it was.
func (h *Handler) LoginUser(ctx *gin.Context) {
	var form credentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if !h.Repository.CheckCredentials(form.Username, form.Password) {
		ctx.HTML(http.StatusOK, "login-error.html", nil)
		return
	}

	user, err := h.Repository.GetUserByUsername(form.Username)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if err := h.Sessions.Establish(ctx, user.ID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/comments")
}

// LogoutUser clears the cookie, blacklists the session id for whatever
// lifetime the token had left, and goes home. Harmless without a
// session.
func (h *Handler) LogoutUser(ctx *gin.Context) {
	claims := h.Sessions.Clear(ctx)
	if claims != nil {
		if ttl := remainingTTL(claims); ttl > 0 {
			err := h.Repository.RevokeSession(ctx.Request.Context(), claims.Id, ttl)
			if err != nil {
				logrus.Errorf("failed to revoke session: %v", err)
			}
		}
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}

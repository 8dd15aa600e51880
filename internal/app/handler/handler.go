package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joshzacharytan/about-me/internal/app/repository"
	"github.com/joshzacharytan/about-me/internal/app/session"
)

type Handler struct {
	Repository *repository.Repository
	Sessions   *session.Manager
}

func NewHandler(r *repository.Repository, s *session.Manager) *Handler {
	return &Handler{
		Repository: r,
		Sessions:   s,
	}
}

// RegisterRoutes wires every page and form endpoint. The current-user
// middleware runs on all of them; pages only use the identity for
// personalization, POST /comments is the one route that requires it.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.WithCurrentUser())

	router.GET("/", h.Index)
	router.GET("/about", h.About)

	router.GET("/contact", h.ShowContactForm)
	router.POST("/contact", h.SubmitContactForm)
	router.GET("/thank-you", h.ShowThankYou)

	router.GET("/register", h.ShowRegisterForm)
	router.POST("/register", h.RegisterUser)
	router.GET("/login", h.ShowLoginForm)
	router.POST("/login", h.LoginUser)
	router.GET("/logout", h.LogoutUser)

	router.GET("/comments", h.GetComments)
	router.POST("/comments", h.PostComment)
}

func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err)
	ctx.JSON(errorStatusCode, gin.H{
		"error": err.Error(),
	})
}

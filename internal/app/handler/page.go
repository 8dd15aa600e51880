package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page handlers only personalize output with the current user; an
// anonymous visitor gets the same page without the greeting.

func (h *Handler) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"user": currentUser(ctx),
	})
}

func (h *Handler) About(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "about.html", gin.H{
		"user": currentUser(ctx),
	})
}

func (h *Handler) ShowContactForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "contact.html", gin.H{
		"user": currentUser(ctx),
	})
}

func (h *Handler) ShowThankYou(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "thank-you.html", gin.H{
		"user": currentUser(ctx),
	})
}

func (h *Handler) ShowRegisterForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) ShowLoginForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", nil)
}

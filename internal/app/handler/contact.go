package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// SubmitContactForm stores the submission and thanks the visitor. No
// account needed.
func (h *Handler) SubmitContactForm(ctx *gin.Context) {
	var form contactForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	_, err := h.Repository.CreateContactEntry(form.Name, form.Email, form.Message)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/thank-you")
}

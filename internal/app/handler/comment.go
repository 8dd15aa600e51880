package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type commentForm struct {
	Text string `form:"comment_text" binding:"required,max=4096"`
}

func (h *Handler) GetComments(ctx *gin.Context) {
	comments, err := h.Repository.GetComments()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.HTML(http.StatusOK, "comments.html", gin.H{
		"user":     currentUser(ctx),
		"comments": comments,
	})
}

// PostComment is the one route that demands a logged-in user. An
// anonymous post is rejected outright, no page, no redirect.
func (h *Handler) PostComment(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		h.errorHandler(ctx, http.StatusUnauthorized, fmt.Errorf("you must be logged in to post a comment"))
		return
	}

	var form commentForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Repository.CreateComment(user.ID, form.Text); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	// POST -> redirect -> GET, refreshing the board does not resubmit.
	ctx.Redirect(http.StatusSeeOther, "/comments")
}

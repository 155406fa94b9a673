package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/coauthors/coauthors"
)

// AuthorPostsController serves co-author profiles.
type AuthorPostsController struct {
	svc *coauthors.Service
}

func NewAuthorPostsController(svc *coauthors.Service) *AuthorPostsController {
	return &AuthorPostsController{svc: svc}
}

// List returns co-authors. A user_login or display_name query turns the collection route
// into a single lookup.
func (pc *AuthorPostsController) List(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if req.UserLogin != "" || req.DisplayName != "" {
		item, err := pc.svc.GetCoAuthor(ctx.Request.Context(), req)
		respondItem(ctx, item, err)
		return
	}
	items, err := pc.svc.ListCoAuthors(ctx.Request.Context(), req)
	respondItems(ctx, items, err)
}

func (pc *AuthorPostsController) Get(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	item, err := pc.svc.GetCoAuthor(ctx.Request.Context(), req)
	respondItem(ctx, item, err)
}

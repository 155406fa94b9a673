package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/coauthors/coauthors"
)

// AuthorUsersController serves the user accounts referenced by author terms.
type AuthorUsersController struct {
	svc *coauthors.Service
}

func NewAuthorUsersController(svc *coauthors.Service) *AuthorUsersController {
	return &AuthorUsersController{svc: svc}
}

func (uc *AuthorUsersController) List(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	items, err := uc.svc.ListUsers(ctx.Request.Context(), req)
	respondItems(ctx, items, err)
}

func (uc *AuthorUsersController) Get(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	item, err := uc.svc.GetUser(ctx.Request.Context(), req)
	respondItem(ctx, item, err)
}

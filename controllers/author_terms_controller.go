package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/coauthors/coauthors"
	"github.com/cppla/coauthors/utils"
)

// AuthorTermsController serves the author term family.
type AuthorTermsController struct {
	svc *coauthors.Service
}

// NewAuthorTermsController constructs an AuthorTermsController.
func NewAuthorTermsController(svc *coauthors.Service) *AuthorTermsController {
	return &AuthorTermsController{svc: svc}
}

type attachTermRequest struct {
	ID int64 `json:"id" form:"id"`
}

// List returns the author terms, optionally scoped to a post.
func (ac *AuthorTermsController) List(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	items, err := ac.svc.ListTerms(ctx.Request.Context(), req)
	respondItems(ctx, items, err)
}

// Get returns one author term.
func (ac *AuthorTermsController) Get(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	item, err := ac.svc.GetTerm(ctx.Request.Context(), req)
	respondItem(ctx, item, err)
}

// Create appends the term named by id to the post's author terms.
func (ac *AuthorTermsController) Create(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var body attachTermRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBind(&body); err != nil {
			respondError(ctx, invalidParam("id"))
			return
		}
	}
	if body.ID == 0 {
		if raw := ctx.Query("id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(ctx, invalidParam("id"))
				return
			}
			body.ID = id
		}
	}
	if body.ID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, "rest_missing_callback_param", "Missing parameter(s): id")
		return
	}
	req.ID = body.ID

	item, location, err := ac.svc.AttachTerm(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Created(ctx, location, item)
}

// Delete always fails; detaching authors is not supported.
func (ac *AuthorTermsController) Delete(ctx *gin.Context) {
	req, err := bindRequest(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondError(ctx, ac.svc.DetachTerm(ctx.Request.Context(), req))
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/coauthors/coauthors"
	"github.com/cppla/coauthors/utils"
)

// errNoRoute mirrors the router's answer for a path that does not match any numeric route.
var errNoRoute = coauthors.NotFound("rest_no_route", "No route was found matching the URL and request method.")

func invalidParam(name string) *coauthors.Error {
	return &coauthors.Error{
		Code:    "rest_invalid_param",
		Message: "Invalid parameter(s): " + name,
		Status:  http.StatusBadRequest,
	}
}

// parseID reads a non-negative integer path parameter; absent means zero.
func parseID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// bindRequest builds the service request from path and query parameters.
func bindRequest(ctx *gin.Context) (*coauthors.Request, error) {
	parentID, ok := parseID(ctx, "parent_id")
	if !ok {
		return nil, errNoRoute
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return nil, errNoRoute
	}

	req := &coauthors.Request{
		ParentID:    parentID,
		ID:          id,
		UserLogin:   ctx.Query("user_login"),
		DisplayName: ctx.Query("display_name"),
		Context:     ctx.DefaultQuery("context", coauthors.ContextEdit),
	}
	if req.Context != coauthors.ContextView && req.Context != coauthors.ContextEdit {
		return nil, invalidParam("context")
	}
	return req, nil
}

// respondError writes err as the error envelope.
func respondError(ctx *gin.Context, err error) {
	var e *coauthors.Error
	if errors.As(err, &e) {
		utils.Error(ctx, e.Status, e.Code, e.Message)
		return
	}
	utils.Sugar.Errorf("unhandled error path=%s err=%v", ctx.Request.URL.Path, err)
	utils.Error(ctx, http.StatusInternalServerError, "rest_internal_error", "Internal server error.")
}

func respondItems(ctx *gin.Context, items []coauthors.Item, err error) {
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, items)
}

func respondItem(ctx *gin.Context, item coauthors.Item, err error) {
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, item)
}

package utils

import "github.com/gin-gonic/gin"

// ErrorData carries the HTTP status inside the error envelope.
type ErrorData struct {
	Status int `json:"status"`
}

// ErrorResponse is the uniform error envelope returned by the API.
type ErrorResponse struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

// Success writes a bare item or collection with status 200.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(200, data)
}

// Created writes a created item with status 201 and its Location header.
func Created(ctx *gin.Context, location string, data interface{}) {
	if location != "" {
		ctx.Header("Location", location)
	}
	ctx.JSON(201, data)
}

// Error writes the error envelope with the given status.
func Error(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, ErrorResponse{
		Code:    code,
		Message: message,
		Data:    ErrorData{Status: status},
	})
}

package handler

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, successResponse{
		Success: true,
		Data:    data,
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Единый конверт ответа API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondOKMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Error: message})
}

// parseIDParam достаёт uuid из path-параметра.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

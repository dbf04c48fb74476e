package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageInternal is the fixed body text for 500 responses. Storage details
// never reach the client.
const MessageInternal = "Internal server error"

// OK writes the value as a 200 JSON body.
func OK(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

// Created writes the value as a 201 JSON body.
func Created(c *gin.Context, v any) {
	c.JSON(http.StatusCreated, v)
}

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ValidationErrors writes a 422 body listing every failing field.
func ValidationErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
}

// Internal writes the generic 500 body.
func Internal(c *gin.Context) {
	Message(c, http.StatusInternalServerError, MessageInternal)
}

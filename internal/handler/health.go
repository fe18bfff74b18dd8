package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz is the readiness endpoint.
func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

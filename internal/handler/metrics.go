package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Metrics holds the fileserver hit counter. It is created in main and passed
// to the handlers that need it rather than living as a package global.
type Metrics struct {
	fileserverHits atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// CountHits increments the counter for every request that passes through.
func (m *Metrics) CountHits() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.fileserverHits.Add(1)
		c.Next()
	}
}

func (m *Metrics) Hits() int64 {
	return m.fileserverHits.Load()
}

func (m *Metrics) Reset() {
	m.fileserverHits.Store(0)
}

// AdminMetrics godoc
// @Summary Admin page showing the fileserver hit count
// @Tags admin
// @Produce html
// @Success 200 {string} string
// @Router /admin/metrics [get]
func (m *Metrics) AdminMetrics(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, `
		<html>
		  <body>
			<h1>Welcome, Chirpy Admin</h1>
			<p>Chirpy has been visited %d times!</p>
		  </body>
		</html>
	`, m.Hits())
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetAnalyticsSummary(c *gin.Context) {
	resp, err := s.analyticsSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	historydomain "github.com/stocklight/stocklight/internal/stockhistory/domain"
)

func (s *Server) ListStockHistory(c *gin.Context) {
	var query struct {
		Limit     string `form:"limit"`
		ProductID string `form:"productId"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	limit := 0
	if raw := strings.TrimSpace(query.Limit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, errInvalidRequest)
			return
		}
		limit = parsed
	}

	resp, err := s.historySvc.Query(c.Request.Context(), historydomain.QueryRequest{
		ProductID: strings.TrimSpace(query.ProductID),
		Limit:     limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

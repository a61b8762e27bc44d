package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	historydomain "github.com/stocklight/stocklight/internal/stockhistory/domain"
)

// errorResponse is the uniform error body. Detail carries the
// underlying error text and is only populated outside production.
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

var errInvalidRequest = errors.New("Invalid request body")

// ErrorHandlingMiddleware renders the last collected error once the
// handler chain finishes without writing a response.
func (s *Server) ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, resp := s.mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, resp)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func (s *Server) mapError(err error) (int, errorResponse) {
	var vErr *productdomain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorResponse{Message: vErr.Message}
	}

	switch {
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrSKUConflict),
		errors.Is(err, historydomain.ErrInvalidProductID):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Message: err.Error()}
	default:
		resp := errorResponse{Message: "Internal server error"}
		if s.cfg.IsDevelopment() {
			resp.Detail = err.Error()
		}
		return http.StatusInternalServerError, resp
	}
}

func classifyErrorForLog(err error) (string, string) {
	var vErr *productdomain.ValidationError
	if errors.As(err, &vErr) {
		return "validation_error", vErr.Field
	}

	switch {
	case errors.Is(err, errInvalidRequest):
		return "validation_error", "request"
	case errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, historydomain.ErrInvalidProductID):
		return "validation_error", "id"
	case errors.Is(err, productdomain.ErrSKUConflict):
		return "conflict", "sku"
	case errors.Is(err, productdomain.ErrProductNotFound):
		return "not_found", "product"
	default:
		return "internal_error", ""
	}
}

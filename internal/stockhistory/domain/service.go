package domain

import (
	"context"
	"errors"
)

var ErrInvalidProductID = errors.New("Invalid product ID")

type Service interface {
	LogChange(ctx context.Context, change ChangeInput) error
	Query(ctx context.Context, req QueryRequest) ([]Response, error)
}

// ChangeInput describes a movement already applied to a product.
// Classification and timestamping happen inside the service.
type ChangeInput struct {
	ProductID   int64
	ProductName string
	OldStock    int64
	NewStock    int64
}

// QueryRequest carries the raw query parameters. ProductID is the
// string form from the request; Limit of zero falls back to the
// configured default.
type QueryRequest struct {
	ProductID string
	Limit     int
}

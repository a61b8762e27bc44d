package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest carries a full product definition. Numeric fields are
// pointers so that an absent field can be told apart from a zero.
type CreateRequest struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Price    *float64 `json:"price"`
	Stock    *int64   `json:"stock"`
	MinStock *int64   `json:"minStock"`
}

// UpdateRequest is a merge patch: only the fields present in the
// request body are applied, the rest keep their stored values.
type UpdateRequest struct {
	Name     *string  `json:"name"`
	SKU      *string  `json:"sku"`
	Price    *float64 `json:"price"`
	Stock    *int64   `json:"stock"`
	MinStock *int64   `json:"minStock"`
}

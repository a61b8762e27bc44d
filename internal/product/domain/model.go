package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Field limits enforced on create and update.
const (
	MaxNameLength = 100
	MaxSKULength  = 50
)

// Status is derived from the current stock level; it is never stored.
type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

type Product struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	SKU       string    `gorm:"column:sku;type:text;not null;uniqueIndex:ux_products_sku"`
	Price     float64   `gorm:"not null"`
	Stock     int64     `gorm:"not null"`
	MinStock  int64     `gorm:"column:min_stock;not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// Status classifies the on-hand quantity. Out-of-stock wins over
// low-stock, so the two sets never overlap regardless of minStock.
func (p *Product) Status() Status {
	switch {
	case p.Stock == 0:
		return StatusOutOfStock
	case p.Stock <= p.MinStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Response is the wire representation of a product.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Stock     int64     `json:"stock"`
	MinStock  int64     `json:"minStock"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewResponse maps a stored product to its wire representation.
func NewResponse(p *Product) Response {
	return Response{
		ID:        snowflake.ID(p.ID).String(),
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Status:    p.Status(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

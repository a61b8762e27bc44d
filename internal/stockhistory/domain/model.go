package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ChangeType labels one stock movement.
type ChangeType string

const (
	ChangeInitial  ChangeType = "INITIAL"
	ChangeIncrease ChangeType = "INCREASE"
	ChangeDecrease ChangeType = "DECREASE"
	ChangeUpdate   ChangeType = "UPDATE"
)

// Classify labels the movement from oldStock to newStock. A movement
// out of an empty position counts as INITIAL even when it is also an
// increase; the rules are checked in order.
func Classify(oldStock, newStock int64) ChangeType {
	switch {
	case oldStock == 0 && newStock > 0:
		return ChangeInitial
	case newStock > oldStock:
		return ChangeIncrease
	case newStock < oldStock:
		return ChangeDecrease
	default:
		return ChangeUpdate
	}
}

// StockHistory is one append-only ledger row. ProductName is captured
// at write time so the row survives later renames and deletes.
type StockHistory struct {
	ID          int64     `gorm:"primaryKey"`
	ProductID   int64     `gorm:"column:product_id;not null;index:ix_stock_histories_product_id"`
	ProductName string    `gorm:"column:product_name;type:text;not null"`
	OldStock    int64     `gorm:"column:old_stock;not null"`
	NewStock    int64     `gorm:"column:new_stock;not null"`
	Change      int64     `gorm:"not null"`
	ChangeType  string    `gorm:"column:change_type;type:text;not null"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:ix_stock_histories_created_at"`
}

func (StockHistory) TableName() string { return "stock_histories" }

type Response struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"productId"`
	ProductName string     `json:"productName"`
	OldStock    int64      `json:"oldStock"`
	NewStock    int64      `json:"newStock"`
	Change      int64      `json:"change"`
	ChangeType  ChangeType `json:"changeType"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewResponse(h *StockHistory) Response {
	return Response{
		ID:          snowflake.ID(h.ID).String(),
		ProductID:   snowflake.ID(h.ProductID).String(),
		ProductName: h.ProductName,
		OldStock:    h.OldStock,
		NewStock:    h.NewStock,
		Change:      h.Change,
		ChangeType:  ChangeType(h.ChangeType),
		CreatedAt:   h.CreatedAt,
	}
}

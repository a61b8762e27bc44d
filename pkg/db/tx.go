package db

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner executes a function as a single unit of work. The GORM
// implementation wraps the function in a database transaction; the
// volatile store serializes it under the store mutex. Repositories
// participate by resolving their handle through FromContext.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner builds a transaction runner over a GORM handle.
func NewTxRunner(gdb *gorm.DB) TxRunner {
	return &gormTxRunner{db: gdb}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// FromContext returns the transaction handle bound to ctx, or fallback
// when the call is not running inside InTx.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}

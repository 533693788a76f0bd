package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TxContext is an open database transaction. It exposes nothing so services
// can carry it between repositories without touching gorm.
type TxContext interface{}

type gormTx struct {
	db *gorm.DB
}

type TransactionManager interface {
	// InTransaction commits when fn returns nil and rolls back otherwise,
	// including when fn panics.
	InTransaction(ctx context.Context, fn func(tx TxContext) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (m *transactionManager) InTransaction(ctx context.Context, fn func(tx TxContext) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

// bind returns the transaction's handle when tx came from a TransactionManager
// and the pool otherwise.
func bind(db *gorm.DB, tx TxContext) *gorm.DB {
	if g, ok := tx.(*gormTx); ok && g != nil {
		return g.db
	}
	return db
}

// forUpdate adds a row lock where the dialect has one. SQLite serialises
// writers already.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

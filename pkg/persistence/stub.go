package persistence

import (
	"context"
)

type transactionStub struct{}

// NewTransactionStub runs fn in place, for storages without transactions.
func NewTransactionStub() Transaction {
	return transactionStub{}
}

func (s transactionStub) Execute(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}

package queries

import (
	"context"

	"fuelstation/internal/infra"
	"fuelstation/internal/pkg/errs"
)

type TransactionQueries interface {
	GetByID(ctx context.Context, id int64) (*TransactionView, error)
	ListByUser(ctx context.Context, userID int64) ([]*TransactionView, error)
}

type TransactionViewRepo interface {
	FindByID(ctx context.Context, id int64) (*TransactionView, error)
	FindByUser(ctx context.Context, userID int64) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	repo TransactionViewRepo
}

func NewTransactionQueries(repo TransactionViewRepo) TransactionQueries {
	return &transactionQueriesImpl{repo: repo}
}

func (q *transactionQueriesImpl) GetByID(ctx context.Context, id int64) (*TransactionView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *transactionQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*TransactionView, error) {
	return q.repo.FindByUser(ctx, userID)
}

package queries

import "context"

// CatalogQueries is the read surface of the station catalog: which columns
// exist and which fuels each one offers. Results always reflect the latest
// committed links; nothing is cached across calls, so administrative edits
// show up on the next read.
type CatalogQueries interface {
	ListColumns(ctx context.Context) ([]*ColumnView, error)
	ListFuels(ctx context.Context) ([]*FuelView, error)
	FuelsOfferedAt(ctx context.Context, columnID int64) ([]*FuelView, error)
	IsOffered(ctx context.Context, columnID, fuelID int64) (bool, error)
}

type CatalogViewRepo interface {
	FindColumns(ctx context.Context) ([]*ColumnView, error)
	FindFuels(ctx context.Context) ([]*FuelView, error)
	FindFuelsByColumn(ctx context.Context, columnID int64) ([]*FuelView, error)
	LinkExists(ctx context.Context, columnID, fuelID int64) (bool, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListColumns(ctx context.Context) ([]*ColumnView, error) {
	return q.repo.FindColumns(ctx)
}

func (q *catalogQueriesImpl) ListFuels(ctx context.Context) ([]*FuelView, error) {
	return q.repo.FindFuels(ctx)
}

func (q *catalogQueriesImpl) FuelsOfferedAt(ctx context.Context, columnID int64) ([]*FuelView, error) {
	return q.repo.FindFuelsByColumn(ctx, columnID)
}

func (q *catalogQueriesImpl) IsOffered(ctx context.Context, columnID, fuelID int64) (bool, error) {
	return q.repo.LinkExists(ctx, columnID, fuelID)
}

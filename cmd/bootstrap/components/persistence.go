package components

import (
	"fuelstation/internal/infra/db"
	"fuelstation/internal/infra/readstore"
	"fuelstation/internal/infra/uow"
	"fuelstation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogViewRepo)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

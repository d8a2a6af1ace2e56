package components

import (
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/infra/uow"
	"pms-calendar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are bound to a transaction inside the unit of work, so the
// graph only needs the pool and the generated queries.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

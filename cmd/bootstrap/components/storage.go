package components

import (
	"classreserve/internal/infra/filestore"
	"classreserve/internal/pkg/clock"
	"classreserve/internal/pkg/config"
	"classreserve/internal/usecase/commands"
	"classreserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewReservationStore,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			NewClassroomStore,
			fx.As(new(commands.ClassroomRepository)),
			fx.As(new(commands.ClassroomExistenceChecker)),
			fx.As(new(queries.ClassroomReader)),
			fx.As(new(queries.ClassroomCatalog)),
		),
		fx.Annotate(
			NewUserStore,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReader)),
		),
	),
)

func NewReservationStore(cfg config.Config, clk clock.Clock) *filestore.ReservationStore {
	return filestore.NewReservationStore(cfg.Storage.ReservationsPath(), clk)
}

func NewClassroomStore(cfg config.Config) *filestore.ClassroomStore {
	return filestore.NewClassroomStore(cfg.Storage.ClassroomsPath())
}

func NewUserStore(cfg config.Config) *filestore.UserStore {
	return filestore.NewUserStore(cfg.Storage.UsersPath())
}

package components

import (
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/password"
	"library-backend/internal/usecase"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewBookCommands,
		commands.NewReservationCommands,
		func(uow shared.UnitOfWork, lease shared.Lease, cfg config.Config, clk clock.Clock) commands.OverdueCommands {
			return commands.NewOverdueCommands(uow, lease, cfg.Sweep.LeaseTTL, clk)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookQueries,
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

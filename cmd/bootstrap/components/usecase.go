package components

import (
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/usecase"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/queries"

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
		NewPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
)

func NewPriceCalculator(cfg config.Config) *pricing.DefaultPriceCalculator {
	calc := pricing.NewDefaultPriceCalculator()
	calc.SurchargeThreshold = cfg.Pricing.SurchargeThreshold
	calc.SurchargePercent = cfg.Pricing.SurchargePercent
	return calc
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomUseCase,
		commands.NewCalendarUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewCalendarQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

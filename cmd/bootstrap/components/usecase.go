package components

import (
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

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
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	NewBookingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRoomQueries,
		queries.NewCalendarQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingPolicy(cfg config.Config) (commands.BookingPolicy, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return commands.BookingPolicy{}, err
	}
	return commands.BookingPolicy{
		Location:     loc,
		FullPlanOnly: cfg.Schedule.FullPlanOnly,
	}, nil
}

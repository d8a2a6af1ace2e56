package components

import (
	"pms-calendar/internal/handler"
	"pms-calendar/internal/handler/api"
	"pms-calendar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewCalendarHandler,
		api.NewBookingHandler,
		func(room *api.RoomHandler, cal *api.CalendarHandler, booking *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Calendar: cal, Room: room, Booking: booking}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

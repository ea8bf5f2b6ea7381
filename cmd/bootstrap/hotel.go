package bootstrap

import (
	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var HotelModule = fx.Module("hotel",
	fx.Provide(
		NewCalendar,
		clock.NewRealClock,
	),
)

// NewCalendar fails start-up when HOTEL_TIMEZONE is not a known IANA zone.
func NewCalendar(cfg config.Config) (occupancy.Calendar, error) {
	return occupancy.LoadCalendar(cfg.Hotel.TimeZone)
}

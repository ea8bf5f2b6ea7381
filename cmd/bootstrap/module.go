package bootstrap

import (
	"hotel-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	HotelModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

package bootstrap

import (
	"classreserve/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.StorageModule,
	components.UseCaseModule,
	components.HandlerModule,
)

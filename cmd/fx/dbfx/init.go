package dbfx

import (
	"go.uber.org/fx"
	"mockmate/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(infra.MigrateAndSeed),
)

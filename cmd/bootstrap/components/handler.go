package components

import (
	"go.uber.org/fx"

	"compras-service/internal/handler"
	"compras-service/internal/handler/api"
	"compras-service/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCompraHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

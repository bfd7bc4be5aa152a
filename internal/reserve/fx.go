package reserve

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/reserve/service"
)

var Module = fx.Module("reserve.service",
	fx.Provide(service.NewService),
)

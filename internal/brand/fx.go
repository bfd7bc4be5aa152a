package brand

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/brand/service"
)

var Module = fx.Module("brand.service",
	fx.Provide(service.NewService),
)

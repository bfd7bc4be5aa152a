package capitalization

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/capitalization/service"
)

var Module = fx.Module("capitalization.service",
	fx.Provide(service.NewService),
)

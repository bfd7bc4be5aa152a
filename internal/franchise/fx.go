package franchise

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/franchise/service"
)

var Module = fx.Module("franchise.service",
	fx.Provide(service.NewService),
	fx.Provide(service.NewStageGate),
)

package payout

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/payout/service"
)

var Module = fx.Module("payout.service",
	fx.Provide(service.NewService),
)

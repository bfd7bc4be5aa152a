package shareledger

import (
	"go.uber.org/fx"

	"github.com/franchizelabs/franchize/internal/shareledger/service"
)

var Module = fx.Module("shareledger.service",
	fx.Provide(service.NewService),
)

package bootstrap

import (
	"library-backend/internal/domain/reservation"
	"library-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLoanPolicy,
	),
)

func NewLoanPolicy(cfg config.Config) reservation.Policy {
	return reservation.NewPolicy(cfg.Loan.DefaultDays, cfg.Loan.ExtensionDays, cfg.Loan.MaxDays)
}

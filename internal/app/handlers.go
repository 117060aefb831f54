package app

import (
	"github.com/yungbote/gigpay-backend/internal/handlers"
	"github.com/yungbote/gigpay-backend/internal/logger"
)

type Handlers struct {
	Contract *handlers.ContractHandler
	Job      *handlers.JobHandler
	Balance  *handlers.BalanceHandler
	Admin    *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Contract: handlers.NewContractHandler(services.Contract),
		Job:      handlers.NewJobHandler(services.Job, services.Payment),
		Balance:  handlers.NewBalanceHandler(services.Balance),
		Admin:    handlers.NewAdminHandler(services.Reporting),
	}
}

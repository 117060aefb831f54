package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/clients/redis"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/services"
)

type Services struct {
	Payment   services.PaymentService
	Balance   services.BalanceService
	Reporting services.ReportingService
	Contract  services.ContractService
	Job       services.JobService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	// The report cache is optional; the reporting engine falls back to the
	// database when redis is not configured or unreachable.
	var reportCache redis.ReportCache
	if cfg.RedisAddr != "" {
		cache, err := redis.NewReportCache(log)
		if err != nil {
			log.Warn("Could not init ReportCache, reports will hit the database", "error", err)
		} else {
			reportCache = cache
		}
	}

	return Services{
		Payment:   services.NewPaymentService(db, log, reposet.Profile, reposet.Contract, reposet.Job),
		Balance:   services.NewBalanceService(db, log, reposet.Profile, reposet.Job),
		Reporting: services.NewReportingService(db, log, reposet.Job, reportCache, cfg.ReportCacheTTL),
		Contract:  services.NewContractService(db, log, reposet.Contract),
		Job:       services.NewJobService(db, log, reposet.Job),
	}, nil
}

package app

import (
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/middleware"
)

type Middleware struct {
	Profile *middleware.ProfileMiddleware
}

func wireMiddleware(log *logger.Logger, reposet Repos) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Profile: middleware.NewProfileMiddleware(log, reposet.Profile),
	}
}

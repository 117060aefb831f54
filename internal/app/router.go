package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigpay-backend/internal/server"
)

func wireRouter(handlerset Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ProfileMiddleware: middleware.Profile,
		ContractHandler:   handlerset.Contract,
		JobHandler:        handlerset.Job,
		BalanceHandler:    handlerset.Balance,
		AdminHandler:      handlerset.Admin,
	})
}

package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/gigpay-backend/internal/handlers"
  "github.com/yungbote/gigpay-backend/internal/middleware"
)

type RouterConfig struct {
  ProfileMiddleware   *middleware.ProfileMiddleware
  ContractHandler     *handlers.ContractHandler
  JobHandler          *handlers.JobHandler
  BalanceHandler      *handlers.BalanceHandler
  AdminHandler        *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "profile_id"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.ProfileMiddleware.RequireProfile())
  // Contracts
  protected.GET("/contracts/:id", cfg.ContractHandler.GetContract)
  protected.GET("/contracts", cfg.ContractHandler.ListContracts)
  // Jobs
  protected.GET("/jobs/unpaid", cfg.JobHandler.ListUnpaid)
  protected.POST("/jobs/:job_id/pay", cfg.JobHandler.Pay)
  // Balances
  protected.POST("/balances/deposit/:userId", cfg.BalanceHandler.Deposit)
  // Admin reports
  protected.GET("/admin/best-profession", cfg.AdminHandler.BestProfession)
  protected.GET("/admin/best-clients", cfg.AdminHandler.BestClients)

  return router
}

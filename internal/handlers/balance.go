package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "github.com/yungbote/gigpay-backend/internal/apperr"
  "github.com/yungbote/gigpay-backend/internal/middleware"
  "github.com/yungbote/gigpay-backend/internal/services"
)

type DepositRequest struct {
  Deposit     decimal.Decimal   `json:"deposit" binding:"required"`
}

type BalanceHandler struct {
  balanceService      services.BalanceService
}

func NewBalanceHandler(balanceService services.BalanceService) *BalanceHandler {
  return &BalanceHandler{balanceService: balanceService}
}

func (bh *BalanceHandler) Deposit(c *gin.Context) {
  profile := middleware.ProfileFromContext(c)
  if profile == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", apperr.ErrForbidden)
    return
  }
  targetID, err := uuid.Parse(c.Param("userId"))
  if err != nil {
    RespondServiceError(c, apperr.Validation("malformed profile id %q", c.Param("userId")))
    return
  }
  var req DepositRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondServiceError(c, apperr.Validation("malformed deposit body: %v", err))
    return
  }
  if err := bh.balanceService.Deposit(c.Request.Context(), targetID, profile.ID, req.Deposit); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusOK)
}

package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/gigpay-backend/internal/apperr"
  "github.com/yungbote/gigpay-backend/internal/middleware"
  "github.com/yungbote/gigpay-backend/internal/services"
)

type ContractHandler struct {
  contractService     services.ContractService
}

func NewContractHandler(contractService services.ContractService) *ContractHandler {
  return &ContractHandler{contractService: contractService}
}

func (ch *ContractHandler) GetContract(c *gin.Context) {
  profile := middleware.ProfileFromContext(c)
  if profile == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", apperr.ErrForbidden)
    return
  }
  contractID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondServiceError(c, apperr.Validation("malformed contract id %q", c.Param("id")))
    return
  }
  contract, err := ch.contractService.GetForProfile(c.Request.Context(), contractID, profile.ID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, contract)
}

func (ch *ContractHandler) ListContracts(c *gin.Context) {
  profile := middleware.ProfileFromContext(c)
  if profile == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", apperr.ErrForbidden)
    return
  }
  contracts, err := ch.contractService.ListActiveForProfile(c.Request.Context(), profile.ID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, contracts)
}

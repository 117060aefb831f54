package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/gigpay-backend/internal/apperr"
  "github.com/yungbote/gigpay-backend/internal/middleware"
  "github.com/yungbote/gigpay-backend/internal/services"
)

type JobHandler struct {
  jobService        services.JobService
  paymentService    services.PaymentService
}

func NewJobHandler(jobService services.JobService, paymentService services.PaymentService) *JobHandler {
  return &JobHandler{jobService: jobService, paymentService: paymentService}
}

func (jh *JobHandler) ListUnpaid(c *gin.Context) {
  profile := middleware.ProfileFromContext(c)
  if profile == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", apperr.ErrForbidden)
    return
  }
  jobs, err := jh.jobService.ListUnpaidForProfile(c.Request.Context(), profile.ID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, jobs)
}

func (jh *JobHandler) Pay(c *gin.Context) {
  profile := middleware.ProfileFromContext(c)
  if profile == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", apperr.ErrForbidden)
    return
  }
  jobID, err := uuid.Parse(c.Param("job_id"))
  if err != nil {
    RespondServiceError(c, apperr.Validation("malformed job id %q", c.Param("job_id")))
    return
  }
  if err := jh.paymentService.Pay(c.Request.Context(), jobID, profile.ID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusOK)
}

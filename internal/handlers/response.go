package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/gigpay-backend/internal/apperr"
)

type APIError struct {
  Message     string	`json:"message"`
  Code	      string	`json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error	      APIError	`json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError translates the service error taxonomy into HTTP. The
// failure kinds keep the original boundary statuses (404 for invisible
// resources, 403 for every business-rule rejection) while the code field
// distinguishes them.
func RespondServiceError(c *gin.Context, err error) {
  var limitErr *apperr.LimitExceededError
  switch {
  case errors.Is(err, apperr.ErrNotFound):
    RespondError(c, http.StatusNotFound, "not_found", err)
  case errors.Is(err, apperr.ErrForbidden):
    RespondError(c, http.StatusForbidden, "forbidden", err)
  case errors.Is(err, apperr.ErrAlreadyPaid):
    RespondError(c, http.StatusForbidden, "already_paid", err)
  case errors.Is(err, apperr.ErrInsufficientFunds):
    RespondError(c, http.StatusForbidden, "insufficient_funds", err)
  case errors.As(err, &limitErr):
    RespondError(c, http.StatusForbidden, "limit_exceeded", err)
  case errors.Is(err, apperr.ErrValidation):
    RespondError(c, http.StatusBadRequest, "validation_error", err)
  default:
    RespondError(c, http.StatusInternalServerError, "internal_error", err)
  }
}

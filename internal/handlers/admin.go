package handlers

import (
  "strconv"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/gigpay-backend/internal/apperr"
  "github.com/yungbote/gigpay-backend/internal/services"
)

const dateOnlyLayout = "2006-01-02"

type AdminHandler struct {
  reportingService      services.ReportingService
}

func NewAdminHandler(reportingService services.ReportingService) *AdminHandler {
  return &AdminHandler{reportingService: reportingService}
}

func (ah *AdminHandler) BestProfession(c *gin.Context) {
  start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  row, err := ah.reportingService.BestProfession(c.Request.Context(), start, end)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, row)
}

func (ah *AdminHandler) BestClients(c *gin.Context) {
  start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  limit := services.DefaultBestClientsLimit
  if raw := c.Query("limit"); raw != "" {
    parsed, convErr := parsePositiveInt(raw)
    if convErr != nil {
      RespondServiceError(c, convErr)
      return
    }
    limit = parsed
  }
  rows, err := ah.reportingService.BestClients(c.Request.Context(), start, end, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, rows)
}

// parseDateRange accepts RFC 3339 timestamps or plain dates, always in UTC.
// A date-only end is widened to the last instant of that day so a day range
// includes payments made during its final day. Unparsable input is a
// validation error, never a silently empty range.
func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
  if startRaw == "" || endRaw == "" {
    return time.Time{}, time.Time{}, apperr.Validation("start and end query parameters are required")
  }
  start, err := parseDateParam(startRaw, false)
  if err != nil {
    return time.Time{}, time.Time{}, err
  }
  end, err := parseDateParam(endRaw, true)
  if err != nil {
    return time.Time{}, time.Time{}, err
  }
  return start, end, nil
}

func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
  if t, err := time.Parse(time.RFC3339, raw); err == nil {
    return t.UTC(), nil
  }
  t, err := time.ParseInLocation(dateOnlyLayout, raw, time.UTC)
  if err != nil {
    return time.Time{}, apperr.Validation("malformed date %q, want RFC 3339 or YYYY-MM-DD", raw)
  }
  if endOfDay {
    t = t.Add(24*time.Hour - time.Nanosecond)
  }
  return t, nil
}

func parsePositiveInt(raw string) (int, error) {
  n, err := strconv.Atoi(raw)
  if err != nil || n <= 0 {
    return 0, apperr.Validation("limit must be a positive integer, got %q", raw)
  }
  return n, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/clients/redis"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
	"github.com/yungbote/gigpay-backend/internal/types"
)

// DefaultBestClientsLimit matches the historical default of the admin
// endpoint.
const DefaultBestClientsLimit = 2

type ReportingService interface {
	BestProfession(ctx context.Context, start, end time.Time) (*types.ProfessionTotal, error)
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]types.ClientTotal, error)
}

type reportingService struct {
	db       *gorm.DB
	log      *logger.Logger
	jobRepo  repos.JobRepo
	cache    redis.ReportCache
	cacheTTL time.Duration
}

// NewReportingService builds the read-only reporting engine. cache may be
// nil, in which case every call hits the database.
func NewReportingService(
	db *gorm.DB,
	baseLog *logger.Logger,
	jobRepo repos.JobRepo,
	cache redis.ReportCache,
	cacheTTL time.Duration,
) ReportingService {
	serviceLog := baseLog.With("service", "ReportingService")
	return &reportingService{
		db:       db,
		log:      serviceLog,
		jobRepo:  jobRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// BestProfession returns the profession whose contractors earned the most
// from jobs paid within [start, end], both ends inclusive. Ties break on
// profession ascending.
func (rs *reportingService) BestProfession(ctx context.Context, start, end time.Time) (*types.ProfessionTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	// UnixNano keeps a second-precision end and a widened end-of-day end on
	// distinct cache entries.
	key := fmt.Sprintf("report:best_profession:%d:%d", start.UnixNano(), end.UnixNano())
	if rs.cache != nil {
		var cached types.ProfessionTotal
		hit, err := rs.cache.Get(ctx, key, &cached)
		if err != nil {
			rs.log.Warn("Report cache read failed", "key", key, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	row, err := rs.jobRepo.BestProfession(ctx, nil, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if row == nil {
		return nil, apperr.ErrNotFound
	}

	if rs.cache != nil {
		if err := rs.cache.Set(ctx, key, row, rs.cacheTTL); err != nil {
			rs.log.Warn("Report cache write failed", "key", key, "error", err)
		}
	}
	return row, nil
}

// BestClients returns up to limit clients ordered by how much they paid for
// jobs within [start, end], both ends inclusive, descending with ties broken
// on client id ascending.
func (rs *reportingService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]types.ClientTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, apperr.Validation("limit must be a positive integer, got %d", limit)
	}

	key := fmt.Sprintf("report:best_clients:%d:%d:%d", start.UnixNano(), end.UnixNano(), limit)
	if rs.cache != nil {
		var cached []types.ClientTotal
		hit, err := rs.cache.Get(ctx, key, &cached)
		if err != nil {
			rs.log.Warn("Report cache read failed", "key", key, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	rows, err := rs.jobRepo.BestClients(ctx, nil, start, end, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(rows) == 0 {
		return nil, apperr.ErrNotFound
	}

	if rs.cache != nil {
		if err := rs.cache.Set(ctx, key, rows, rs.cacheTTL); err != nil {
			rs.log.Warn("Report cache write failed", "key", key, "error", err)
		}
	}
	return rows, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperr.Validation("start and end are required")
	}
	if end.Before(start) {
		return apperr.Validation("end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return nil
}

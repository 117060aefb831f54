package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
	"github.com/yungbote/gigpay-backend/internal/types"
)

type JobService interface {
	ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Job, error)
}

type jobService struct {
	db      *gorm.DB
	log     *logger.Logger
	jobRepo repos.JobRepo
}

func NewJobService(db *gorm.DB, baseLog *logger.Logger, jobRepo repos.JobRepo) JobService {
	serviceLog := baseLog.With("service", "JobService")
	return &jobService{db: db, log: serviceLog, jobRepo: jobRepo}
}

// ListUnpaidForProfile returns unpaid jobs under the profile's in_progress
// contracts, on either side of the contract.
func (js *jobService) ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Job, error) {
	jobs, err := js.jobRepo.ListUnpaidForProfile(ctx, nil, profileID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return jobs, nil
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
	"github.com/yungbote/gigpay-backend/internal/types"
)

type PaymentService interface {
	Pay(ctx context.Context, jobID, profileID uuid.UUID) error
}

type paymentService struct {
	db           *gorm.DB
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	contractRepo repos.ContractRepo
	jobRepo      repos.JobRepo
}

func NewPaymentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	contractRepo repos.ContractRepo,
	jobRepo repos.JobRepo,
) PaymentService {
	serviceLog := baseLog.With("service", "PaymentService")
	return &paymentService{
		db:           db,
		log:          serviceLog,
		profileRepo:  profileRepo,
		contractRepo: contractRepo,
		jobRepo:      jobRepo,
	}
}

// Pay settles a job on behalf of the calling profile. Preconditions are
// checked in order: the job must exist under a contract the caller is party
// to, must not be paid yet, the caller must be the client side of the
// contract, and the client balance must cover the price. On success the
// client debit, contractor credit, contract termination and job settlement
// commit as one transaction; any failure rolls back all four.
func (ps *paymentService) Pay(ctx context.Context, jobID, profileID uuid.UUID) error {
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := ps.jobRepo.GetByIDForProfile(ctx, tx, jobID, profileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return apperr.Internal(err)
		}
		if job.Paid {
			return apperr.ErrAlreadyPaid
		}

		contract := job.Contract
		if contract == nil {
			contract, err = ps.contractRepo.GetByID(ctx, tx, job.ContractID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ErrNotFound
				}
				return apperr.Internal(err)
			}
		}
		if profileID == contract.ContractorID {
			return apperr.ErrForbidden
		}

		client, err := ps.profileRepo.GetByIDForUpdate(ctx, tx, contract.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return apperr.Internal(err)
		}
		if client.Balance.LessThan(job.Price) {
			return apperr.ErrInsufficientFunds
		}

		// The row lock above covers the common path; the compare-and-set on
		// paid and the guarded debit keep the invariants even when the lock
		// is unavailable (sqlite) or a racing payer slipped past the read.
		settled, err := ps.jobRepo.MarkPaid(ctx, tx, job.ID, time.Now().UTC())
		if err != nil {
			return apperr.Internal(err)
		}
		if !settled {
			return apperr.ErrAlreadyPaid
		}

		debited, err := ps.profileRepo.DebitBalance(ctx, tx, contract.ClientID, job.Price)
		if err != nil {
			return apperr.Internal(err)
		}
		if !debited {
			return apperr.ErrInsufficientFunds
		}

		credited, err := ps.profileRepo.CreditBalance(ctx, tx, contract.ContractorID, job.Price)
		if err != nil {
			return apperr.Internal(err)
		}
		if !credited {
			return apperr.ErrNotFound
		}

		if err := ps.contractRepo.SetStatus(ctx, tx, contract.ID, types.ContractStatusTerminated); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		ps.log.Debug("Pay rejected", "job_id", jobID, "profile_id", profileID, "error", err)
		return err
	}
	ps.log.Info("Job paid", "job_id", jobID, "client_id", profileID)
	return nil
}

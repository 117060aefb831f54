package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
)

// depositLimitRatio caps a deposit at 25% of the client's outstanding unpaid
// job total.
var depositLimitRatio = decimal.New(25, -2)

type BalanceService interface {
	Deposit(ctx context.Context, targetProfileID, profileID uuid.UUID, amount decimal.Decimal) error
}

type balanceService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	jobRepo     repos.JobRepo
}

func NewBalanceService(
	db *gorm.DB,
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	jobRepo repos.JobRepo,
) BalanceService {
	serviceLog := baseLog.With("service", "BalanceService")
	return &balanceService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
	}
}

// Deposit credits the target profile, subject to the deposit limit. A
// profile may only deposit to itself. The threshold is computed and the
// credit applied inside one transaction with the profile row locked, so a
// concurrent payment cannot slip between the check and the write. When the
// client has no unpaid jobs the threshold is zero and every deposit is
// rejected; the original comparison against an undefined threshold would
// have admitted arbitrary amounts.
func (bs *balanceService) Deposit(ctx context.Context, targetProfileID, profileID uuid.UUID, amount decimal.Decimal) error {
	if targetProfileID != profileID {
		return apperr.ErrForbidden
	}
	if !amount.IsPositive() {
		return apperr.Validation("deposit amount must be positive, got %s", amount)
	}

	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := bs.profileRepo.GetByIDForUpdate(ctx, tx, targetProfileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return apperr.Internal(err)
		}

		outstanding, err := bs.jobRepo.SumUnpaidForClient(ctx, tx, targetProfileID)
		if err != nil {
			return apperr.Internal(err)
		}
		threshold := outstanding.Mul(depositLimitRatio)
		if amount.GreaterThan(threshold) {
			return &apperr.LimitExceededError{Threshold: threshold}
		}

		credited, err := bs.profileRepo.CreditBalance(ctx, tx, targetProfileID, amount)
		if err != nil {
			return apperr.Internal(err)
		}
		if !credited {
			return apperr.ErrNotFound
		}
		return nil
	})
	if err != nil {
		bs.log.Debug("Deposit rejected", "profile_id", profileID, "error", err)
		return err
	}
	bs.log.Info("Deposit applied", "profile_id", profileID, "amount", amount)
	return nil
}

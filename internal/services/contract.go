package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
	"github.com/yungbote/gigpay-backend/internal/types"
)

type ContractService interface {
	GetForProfile(ctx context.Context, contractID, profileID uuid.UUID) (*types.Contract, error)
	ListActiveForProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Contract, error)
}

type contractService struct {
	db           *gorm.DB
	log          *logger.Logger
	contractRepo repos.ContractRepo
}

func NewContractService(db *gorm.DB, baseLog *logger.Logger, contractRepo repos.ContractRepo) ContractService {
	serviceLog := baseLog.With("service", "ContractService")
	return &contractService{db: db, log: serviceLog, contractRepo: contractRepo}
}

func (cs *contractService) GetForProfile(ctx context.Context, contractID, profileID uuid.UUID) (*types.Contract, error) {
	contract, err := cs.contractRepo.GetByIDForProfile(ctx, nil, contractID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Internal(err)
	}
	return contract, nil
}

func (cs *contractService) ListActiveForProfile(ctx context.Context, profileID uuid.UUID) ([]*types.Contract, error) {
	contracts, err := cs.contractRepo.ListActiveForProfile(ctx, nil, profileID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return contracts, nil
}

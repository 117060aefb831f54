package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/gigpay-backend/internal/logger"
  "github.com/yungbote/gigpay-backend/internal/types"
)

type ContractRepo interface {
  Create(ctx context.Context, tx *gorm.DB, contracts []*types.Contract) ([]*types.Contract, error)
  GetByID(ctx context.Context, tx *gorm.DB, contractID uuid.UUID) (*types.Contract, error)
  GetByIDForProfile(ctx context.Context, tx *gorm.DB, contractID, profileID uuid.UUID) (*types.Contract, error)
  ListActiveForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Contract, error)
  SetStatus(ctx context.Context, tx *gorm.DB, contractID uuid.UUID, status string) error
}

type contractRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContractRepo(db *gorm.DB, baseLog *logger.Logger) ContractRepo {
  repoLog := baseLog.With("repo", "ContractRepo")
  return &contractRepo{db: db, log: repoLog}
}

func (cr *contractRepo) Create(ctx context.Context, tx *gorm.DB, contracts []*types.Contract) ([]*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(contracts) == 0 {
    return []*types.Contract{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&contracts).Error; err != nil {
    return nil, err
  }
  return contracts, nil
}

func (cr *contractRepo) GetByID(ctx context.Context, tx *gorm.DB, contractID uuid.UUID) (*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var result types.Contract
  if err := transaction.WithContext(ctx).
    Where("id = ?", contractID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

// GetByIDForProfile only returns the contract when the given profile is one
// of its two parties. Contracts belonging to other profiles are
// indistinguishable from missing ones.
func (cr *contractRepo) GetByIDForProfile(ctx context.Context, tx *gorm.DB, contractID, profileID uuid.UUID) (*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var result types.Contract
  if err := transaction.WithContext(ctx).
    Where("id = ? AND (client_id = ? OR contractor_id = ?)", contractID, profileID, profileID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (cr *contractRepo) ListActiveForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Contract, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Contract
  if err := transaction.WithContext(ctx).
    Where("(client_id = ? OR contractor_id = ?) AND status <> ?", profileID, profileID, types.ContractStatusTerminated).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *contractRepo) SetStatus(ctx context.Context, tx *gorm.DB, contractID uuid.UUID, status string) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.Contract{}).
    Where("id = ?", contractID).
    Updates(map[string]interface{}{
      "status":     status,
      "updated_at": time.Now().UTC(),
    })
  if result.Error != nil {
    return result.Error
  }
  if result.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  return nil
}

package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/gigpay-backend/internal/logger"
  "github.com/yungbote/gigpay-backend/internal/types"
)

type ProfileRepo interface {
  Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error)
  GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  GetByIDForUpdate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error)
  CreditBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, amount decimal.Decimal) (bool, error)
  DebitBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, amount decimal.Decimal) (bool, error)
}

type profileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
  repoLog := baseLog.With("repo", "ProfileRepo")
  return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(profiles) == 0 {
    return []*types.Profile{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
    return nil, err
  }
  return profiles, nil
}

func (pr *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Profile
  if err := transaction.WithContext(ctx).
    Where("id = ?", profileID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

// GetByIDForUpdate reads the profile row under FOR UPDATE so a concurrent
// deposit or payment touching the same balance serializes behind this
// transaction. SQLite has no row locks; its writers serialize on the
// database lock instead, so the clause is only applied on postgres.
func (pr *profileRepo) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.Profile, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  query := transaction.WithContext(ctx)
  if transaction.Dialector.Name() == "postgres" {
    query = query.Clauses(clause.Locking{Strength: "UPDATE"})
  }

  var result types.Profile
  if err := query.
    Where("id = ?", profileID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

// CreditBalance adds amount to the stored balance with a SQL expression so
// the increment composes with concurrent writers. Returns false when no row
// matched.
func (pr *profileRepo) CreditBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, amount decimal.Decimal) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.Profile{}).
    Where("id = ?", profileID).
    Updates(map[string]interface{}{
      "balance":    gorm.Expr("balance + ?", amount),
      "updated_at": time.Now().UTC(),
    })
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected == 1, nil
}

// DebitBalance subtracts amount, guarded by balance >= amount in the WHERE
// clause. Returns false when the guard rejected the debit (or the profile is
// missing); the caller treats that as insufficient funds and aborts its
// transaction.
func (pr *profileRepo) DebitBalance(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, amount decimal.Decimal) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.Profile{}).
    Where("id = ? AND balance >= ?", profileID, amount).
    Updates(map[string]interface{}{
      "balance":    gorm.Expr("balance - ?", amount),
      "updated_at": time.Now().UTC(),
    })
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected == 1, nil
}

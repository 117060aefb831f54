package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
  "github.com/yungbote/gigpay-backend/internal/logger"
  "github.com/yungbote/gigpay-backend/internal/types"
)

type JobRepo interface {
  Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error)
  GetByIDForProfile(ctx context.Context, tx *gorm.DB, jobID, profileID uuid.UUID) (*types.Job, error)
  ListUnpaidForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error)
  MarkPaid(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, paidAt time.Time) (bool, error)
  SumUnpaidForClient(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) (decimal.Decimal, error)
  BestProfession(ctx context.Context, tx *gorm.DB, start, end time.Time) (*types.ProfessionTotal, error)
  BestClients(ctx context.Context, tx *gorm.DB, start, end time.Time, limit int) ([]types.ClientTotal, error)
}

type jobRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJobRepo(db *gorm.DB, baseLog *logger.Logger) JobRepo {
  repoLog := baseLog.With("repo", "JobRepo")
  return &jobRepo{db: db, log: repoLog}
}

func (jr *jobRepo) Create(ctx context.Context, tx *gorm.DB, jobs []*types.Job) ([]*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  if len(jobs) == 0 {
    return []*types.Job{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&jobs).Error; err != nil {
    return nil, err
  }
  return jobs, nil
}

// GetByIDForProfile returns the job with its contract preloaded, but only
// when the given profile is a party of that contract.
func (jr *jobRepo) GetByIDForProfile(ctx context.Context, tx *gorm.DB, jobID, profileID uuid.UUID) (*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var result types.Job
  if err := transaction.WithContext(ctx).
    Preload("Contract").
    Select("job.*").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("job.id = ? AND (contract.client_id = ? OR contract.contractor_id = ?)", jobID, profileID, profileID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (jr *jobRepo) ListUnpaidForProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.Job, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var results []*types.Job
  if err := transaction.WithContext(ctx).
    Select("job.*").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("job.paid = ? AND contract.status = ? AND (contract.client_id = ? OR contract.contractor_id = ?)",
      false, types.ContractStatusInProgress, profileID, profileID).
    Order("job.created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// MarkPaid flips paid and stamps payment_date in one compare-and-set: the
// WHERE clause only matches while paid is still false, so concurrent payers
// cannot both settle the same job. Returns false when the job was already
// paid (or missing).
func (jr *jobRepo) MarkPaid(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, paidAt time.Time) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Where("id = ? AND paid = ?", jobID, false).
    Updates(map[string]interface{}{
      "paid":         true,
      "payment_date": paidAt,
      "updated_at":   time.Now().UTC(),
    })
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected == 1, nil
}

// SumUnpaidForClient is the outstanding total: prices of unpaid jobs under
// contracts where the profile is the client. Missing rows sum to zero.
func (jr *jobRepo) SumUnpaidForClient(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) (decimal.Decimal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var row struct {
    Total decimal.Decimal
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Select("COALESCE(SUM(job.price), 0) AS total").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Where("contract.client_id = ? AND job.paid = ?", clientID, false).
    Scan(&row).Error; err != nil {
    return decimal.Zero, err
  }
  return row.Total, nil
}

// BestProfession sums paid jobs with payment_date in [start, end] grouped by
// the contractor's profession and returns the top group. Ties break on
// profession ascending. Returns nil when no job was paid in range.
func (jr *jobRepo) BestProfession(ctx context.Context, tx *gorm.DB, start, end time.Time) (*types.ProfessionTotal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var rows []types.ProfessionTotal
  if err := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Select("profile.profession AS profession, SUM(job.price) AS total").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Joins("JOIN profile ON profile.id = contract.contractor_id").
    Where("job.paid = ? AND job.payment_date BETWEEN ? AND ?", true, start, end).
    Group("profile.profession").
    Order("total DESC, profile.profession ASC").
    Limit(1).
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  if len(rows) == 0 {
    return nil, nil
  }
  return &rows[0], nil
}

// BestClients sums paid jobs with payment_date in [start, end] grouped by
// client, descending by the summed amount with ties broken on client id
// ascending, truncated to limit.
func (jr *jobRepo) BestClients(ctx context.Context, tx *gorm.DB, start, end time.Time, limit int) ([]types.ClientTotal, error) {
  transaction := tx
  if transaction == nil {
    transaction = jr.db
  }

  var rows []types.ClientTotal
  if err := transaction.WithContext(ctx).
    Model(&types.Job{}).
    Select("profile.id AS id, profile.first_name || ' ' || profile.last_name AS full_name, SUM(job.price) AS paid").
    Joins("JOIN contract ON contract.id = job.contract_id").
    Joins("JOIN profile ON profile.id = contract.client_id").
    Where("job.paid = ? AND job.payment_date BETWEEN ? AND ?", true, start, end).
    Group("profile.id, profile.first_name, profile.last_name").
    Order("paid DESC, profile.id ASC").
    Limit(limit).
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

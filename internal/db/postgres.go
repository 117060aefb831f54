package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/gigpay-backend/internal/types"
  "github.com/yungbote/gigpay-backend/internal/utils"
  "github.com/yungbote/gigpay-backend/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "gigpay", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Profile{},
    &types.Contract{},
    &types.Job{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  if err := s.db.Exec(`
    ALTER TABLE "contract"
    ADD CONSTRAINT "fk_contract_client_id"
    FOREIGN KEY ("client_id")
    REFERENCES "profile"("id")
  `).Error; err != nil {
    s.log.Warn("Could not add fk_contract_client_id (may already exist)", "error", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "contract"
    ADD CONSTRAINT "fk_contract_contractor_id"
    FOREIGN KEY ("contractor_id")
    REFERENCES "profile"("id")
  `).Error; err != nil {
    s.log.Warn("Could not add fk_contract_contractor_id (may already exist)", "error", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "job"
    ADD CONSTRAINT "fk_job_contract_id"
    FOREIGN KEY ("contract_id")
    REFERENCES "contract"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Could not add fk_job_contract_id (may already exist)", "error", err)
  }
  // Balances must never go negative regardless of application bugs.
  if err := s.db.Exec(`
    ALTER TABLE "profile"
    ADD CONSTRAINT "chk_profile_balance_non_negative"
    CHECK ("balance" >= 0)
  `).Error; err != nil {
    s.log.Warn("Could not add chk_profile_balance_non_negative (may already exist)", "error", err)
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}

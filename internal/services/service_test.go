package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/repos"
	"github.com/yungbote/gigpay-backend/internal/types"
)

type testEnv struct {
	db           *gorm.DB
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	contractRepo repos.ContractRepo
	jobRepo      repos.JobRepo
	payment      PaymentService
	balance      BalanceService
	reporting    ReportingService
	contract     ContractService
	job          JobService
}

// newTestEnv wires the full service stack against an in-memory sqlite
// database. The pool is capped at one connection so concurrent transactions
// serialize the way row locks serialize them on postgres.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&types.Profile{}, &types.Contract{}, &types.Job{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	profileRepo := repos.NewProfileRepo(db, log)
	contractRepo := repos.NewContractRepo(db, log)
	jobRepo := repos.NewJobRepo(db, log)

	return &testEnv{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		contractRepo: contractRepo,
		jobRepo:      jobRepo,
		payment:      NewPaymentService(db, log, profileRepo, contractRepo, jobRepo),
		balance:      NewBalanceService(db, log, profileRepo, jobRepo),
		reporting:    NewReportingService(db, log, jobRepo, nil, 0),
		contract:     NewContractService(db, log, contractRepo),
		job:          NewJobService(db, log, jobRepo),
	}
}

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}

func seedProfile(t *testing.T, env *testEnv, role, firstName, lastName, profession, balance string) *types.Profile {
	t.Helper()
	profile := &types.Profile{
		FirstName:  firstName,
		LastName:   lastName,
		Profession: profession,
		Balance:    dec(t, balance),
		Role:       role,
	}
	if err := env.db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func seedContract(t *testing.T, env *testEnv, client, contractor *types.Profile, status string) *types.Contract {
	t.Helper()
	contract := &types.Contract{
		ClientID:     client.ID,
		ContractorID: contractor.ID,
		Terms:        "standard terms",
		Status:       status,
	}
	if err := env.db.Create(contract).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	return contract
}

func seedJob(t *testing.T, env *testEnv, contract *types.Contract, price string, paidAt *time.Time) *types.Job {
	t.Helper()
	job := &types.Job{
		ContractID:  contract.ID,
		Description: "work",
		Price:       dec(t, price),
		Paid:        paidAt != nil,
		PaymentDate: paidAt,
	}
	if err := env.db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func reloadProfile(t *testing.T, env *testEnv, p *types.Profile) *types.Profile {
	t.Helper()
	var out types.Profile
	if err := env.db.Where("id = ?", p.ID).First(&out).Error; err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	return &out
}

func reloadContract(t *testing.T, env *testEnv, c *types.Contract) *types.Contract {
	t.Helper()
	var out types.Contract
	if err := env.db.Where("id = ?", c.ID).First(&out).Error; err != nil {
		t.Fatalf("reload contract: %v", err)
	}
	return &out
}

func reloadJob(t *testing.T, env *testEnv, j *types.Job) *types.Job {
	t.Helper()
	var out types.Job
	if err := env.db.Where("id = ?", j.ID).First(&out).Error; err != nil {
		t.Fatalf("reload job: %v", err)
	}
	return &out
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

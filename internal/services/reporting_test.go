package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/gigpay-backend/internal/apperr"
	"github.com/yungbote/gigpay-backend/internal/types"
)

func TestBestProfession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := seedProfile(t, env, types.RoleClient, "Harry", "Potter", "", "1000")
	programmer := seedProfile(t, env, types.RoleContractor, "Linus", "Torvalds", "Programmer", "0")
	designer := seedProfile(t, env, types.RoleContractor, "Carey", "Sagan", "Designer", "0")

	progContract := seedContract(t, env, client, programmer, types.ContractStatusTerminated)
	designContract := seedContract(t, env, client, designer, types.ContractStatusTerminated)

	inRange := utcDate(2020, 8, 15)
	seedJob(t, env, progContract, "300", &inRange)
	seedJob(t, env, progContract, "200", &inRange)
	seedJob(t, env, designContract, "300", &inRange)
	// Outside the window and unpaid jobs must not count.
	outOfRange := utcDate(2021, 1, 1)
	seedJob(t, env, progContract, "5000", &outOfRange)
	seedJob(t, env, designContract, "5000", nil)

	got, err := env.reporting.BestProfession(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31))
	if err != nil {
		t.Fatalf("BestProfession failed: %v", err)
	}
	if got.Profession != "Programmer" {
		t.Errorf("profession = %q, want Programmer", got.Profession)
	}
	if !got.Total.Equal(dec(t, "500")) {
		t.Errorf("total = %s, want 500", got.Total)
	}
}

func TestBestProfessionEmptyRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.reporting.BestProfession(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31))
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("BestProfession error = %v, want ErrNotFound", err)
	}
}

func TestBestProfessionTieBreaksOnName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := seedProfile(t, env, types.RoleClient, "Harry", "Potter", "", "1000")
	zealot := seedProfile(t, env, types.RoleContractor, "Zed", "Zed", "Zealot", "0")
	artist := seedProfile(t, env, types.RoleContractor, "Ann", "Arbor", "Artist", "0")

	paidAt := utcDate(2020, 8, 15)
	seedJob(t, env, seedContract(t, env, client, zealot, types.ContractStatusTerminated), "100", &paidAt)
	seedJob(t, env, seedContract(t, env, client, artist, types.ContractStatusTerminated), "100", &paidAt)

	got, err := env.reporting.BestProfession(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31))
	if err != nil {
		t.Fatalf("BestProfession failed: %v", err)
	}
	if got.Profession != "Artist" {
		t.Errorf("profession = %q, want Artist (tie broken ascending)", got.Profession)
	}
}

func TestBestClients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	big := seedProfile(t, env, types.RoleClient, "Harry", "Potter", "", "0")
	mid := seedProfile(t, env, types.RoleClient, "Mr", "Robot", "", "0")
	small := seedProfile(t, env, types.RoleClient, "Ash", "Kethcum", "", "0")
	contractor := seedProfile(t, env, types.RoleContractor, "John", "Lenon", "Musician", "0")

	paidAt := utcDate(2020, 8, 15)
	seedJob(t, env, seedContract(t, env, big, contractor, types.ContractStatusTerminated), "300", &paidAt)
	seedJob(t, env, seedContract(t, env, mid, contractor, types.ContractStatusTerminated), "200", &paidAt)
	seedJob(t, env, seedContract(t, env, small, contractor, types.ContractStatusTerminated), "100", &paidAt)

	got, err := env.reporting.BestClients(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31), 2)
	if err != nil {
		t.Fatalf("BestClients failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].ID != big.ID || !got[0].Paid.Equal(dec(t, "300")) {
		t.Errorf("row 0 = %v/%s, want top payer with 300", got[0].ID, got[0].Paid)
	}
	if got[0].FullName != "Harry Potter" {
		t.Errorf("row 0 full name = %q, want %q", got[0].FullName, "Harry Potter")
	}
	if got[1].ID != mid.ID || !got[1].Paid.Equal(dec(t, "200")) {
		t.Errorf("row 1 = %v/%s, want second payer with 200", got[1].ID, got[1].Paid)
	}
}

func TestBestClientsRangeBoundariesInclusive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := seedProfile(t, env, types.RoleClient, "Harry", "Potter", "", "0")
	contractor := seedProfile(t, env, types.RoleContractor, "John", "Lenon", "Musician", "0")
	contract := seedContract(t, env, client, contractor, types.ContractStatusTerminated)

	start := utcDate(2020, 8, 1)
	end := utcDate(2020, 8, 31)
	seedJob(t, env, contract, "10", &start)
	seedJob(t, env, contract, "20", &end)

	got, err := env.reporting.BestClients(ctx, start, end, 5)
	if err != nil {
		t.Fatalf("BestClients failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	if !got[0].Paid.Equal(dec(t, "30")) {
		t.Errorf("paid = %s, want 30 (both boundary payments included)", got[0].Paid)
	}
}

func TestReportingValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := utcDate(2020, 8, 31)
	end := utcDate(2020, 8, 1)

	if _, err := env.reporting.BestProfession(ctx, start, end); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("BestProfession(end before start) error = %v, want ErrValidation", err)
	}
	if _, err := env.reporting.BestClients(ctx, end, start, 0); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("BestClients(limit 0) error = %v, want ErrValidation", err)
	}
	var zero time.Time
	if _, err := env.reporting.BestProfession(ctx, zero, zero); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("BestProfession(zero range) error = %v, want ErrValidation", err)
	}
}

func TestBestClientsTieBreaksOnID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := seedProfile(t, env, types.RoleClient, "Harry", "Potter", "", "0")
	second := seedProfile(t, env, types.RoleClient, "Mr", "Robot", "", "0")
	contractor := seedProfile(t, env, types.RoleContractor, "John", "Lenon", "Musician", "0")

	paidAt := utcDate(2020, 8, 15)
	seedJob(t, env, seedContract(t, env, first, contractor, types.ContractStatusTerminated), "100", &paidAt)
	seedJob(t, env, seedContract(t, env, second, contractor, types.ContractStatusTerminated), "100", &paidAt)

	// ids are random, so work out which client sorts first.
	if second.ID.String() < first.ID.String() {
		first, second = second, first
	}

	got, err := env.reporting.BestClients(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31), 2)
	if err != nil {
		t.Fatalf("BestClients failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("order = [%v %v], want id ascending [%v %v]", got[0].ID, got[1].ID, first.ID, second.ID)
	}
	if !got[0].Paid.Equal(dec(t, "100")) || !got[1].Paid.Equal(dec(t, "100")) {
		t.Errorf("totals = [%s %s], want both 100", got[0].Paid, got[1].Paid)
	}
}

// recordingCache captures the keys the reporting engine asks for without
// touching redis.
type recordingCache struct {
	keys []string
}

func (rc *recordingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	rc.keys = append(rc.keys, key)
	return false, nil
}

func (rc *recordingCache) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	return nil
}

func (rc *recordingCache) Close() error { return nil }

func TestReportCacheKeysKeepSubSecondPrecision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cache := &recordingCache{}
	reporting := NewReportingService(env.db, env.log, env.jobRepo, cache, time.Minute)

	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	endExact := time.Date(2020, 8, 31, 23, 59, 59, 0, time.UTC)
	endOfDay := time.Date(2020, 8, 31, 23, 59, 59, 999999999, time.UTC)

	_, _ = reporting.BestClients(ctx, start, endExact, 2)
	_, _ = reporting.BestClients(ctx, start, endOfDay, 2)
	_, _ = reporting.BestProfession(ctx, start, endExact)
	_, _ = reporting.BestProfession(ctx, start, endOfDay)

	if len(cache.keys) != 4 {
		t.Fatalf("cache lookups = %d, want 4", len(cache.keys))
	}
	if cache.keys[0] == cache.keys[1] {
		t.Errorf("BestClients keys collide for ends differing below a second: %q", cache.keys[0])
	}
	if cache.keys[2] == cache.keys[3] {
		t.Errorf("BestProfession keys collide for ends differing below a second: %q", cache.keys[2])
	}
}

func TestBestClientsEmptyRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.reporting.BestClients(ctx, utcDate(2020, 8, 1), utcDate(2020, 8, 31), 2)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("BestClients error = %v, want ErrNotFound", err)
	}
}

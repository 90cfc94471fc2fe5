package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newQuotaTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	// Each pooled sqlite connection would get its own in-memory database,
	// so pin the pool to a single shared connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedQuota(t *testing.T, db *gorm.DB, roomID int64, date string, quota int) {
	t.Helper()
	if err := db.Create(&domain.RoomQuota{RoomID: roomID, Date: date, Quota: quota}).Error; err != nil {
		t.Fatalf("seed quota: %v", err)
	}
}

func quotaValue(t *testing.T, db *gorm.DB, roomID int64, date string) int {
	t.Helper()
	var row domain.RoomQuota
	if err := db.Where("room_id = ? AND date = ?", roomID, date).First(&row).Error; err != nil {
		t.Fatalf("read quota: %v", err)
	}
	return row.Quota
}

func TestQuotaRepository_DecrementRange_RaceForLastUnit(t *testing.T) {
	db := newQuotaTestDB(t)
	repo := NewQuotaRepository(db)

	seedQuota(t, db, 5, "2025-07-01", 1)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.DecrementRange(context.Background(), 5, []string{"2025-07-01"})
		}()
	}
	wg.Wait()
	close(results)

	var successes, losses int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var exhausted *QuotaExhaustedError
		assert.ErrorAs(t, err, &exhausted)
		assert.Equal(t, "2025-07-01", exhausted.Date)
		losses++
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, losses)
	assert.Equal(t, 0, quotaValue(t, db, 5, "2025-07-01"))
}

func TestQuotaRepository_DecrementRange_RollsBackOnExhaustedNight(t *testing.T) {
	db := newQuotaTestDB(t)
	repo := NewQuotaRepository(db)

	seedQuota(t, db, 5, "2025-07-01", 1)
	seedQuota(t, db, 5, "2025-07-02", 1)
	seedQuota(t, db, 5, "2025-07-03", 0)

	err := repo.DecrementRange(context.Background(), 5, []string{"2025-07-01", "2025-07-02", "2025-07-03"})

	var exhausted *QuotaExhaustedError
	assert.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "2025-07-03", exhausted.Date)

	// the two decrements that went through before the failed night roll back
	assert.Equal(t, 1, quotaValue(t, db, 5, "2025-07-01"))
	assert.Equal(t, 1, quotaValue(t, db, 5, "2025-07-02"))
	assert.Equal(t, 0, quotaValue(t, db, 5, "2025-07-03"))
}

func TestQuotaRepository_DecrementRange_MissingRowCountsAsExhausted(t *testing.T) {
	db := newQuotaTestDB(t)
	repo := NewQuotaRepository(db)

	seedQuota(t, db, 5, "2025-07-01", 2)

	err := repo.DecrementRange(context.Background(), 5, []string{"2025-07-01", "2025-07-02"})

	var exhausted *QuotaExhaustedError
	assert.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "2025-07-02", exhausted.Date)
	assert.Equal(t, 2, quotaValue(t, db, 5, "2025-07-01"))
}

func TestQuotaRepository_IncrementRange_RepairsDecrement(t *testing.T) {
	db := newQuotaTestDB(t)
	repo := NewQuotaRepository(db)

	seedQuota(t, db, 5, "2025-07-01", 2)
	seedQuota(t, db, 5, "2025-07-02", 2)
	nights := []string{"2025-07-01", "2025-07-02"}

	assert.NoError(t, repo.DecrementRange(context.Background(), 5, nights))
	assert.NoError(t, repo.IncrementRange(context.Background(), 5, nights))

	assert.Equal(t, 2, quotaValue(t, db, 5, "2025-07-01"))
	assert.Equal(t, 2, quotaValue(t, db, 5, "2025-07-02"))
}

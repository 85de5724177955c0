package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"cmms/internal/domain"
)

func setupPartRepo(t *testing.T) *PartRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:part_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	// one connection so concurrent writers queue instead of hitting
	// SQLITE_BUSY
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.Part{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewPartRepository(db)
}

func TestDecrementStockAppliesGuardedUpdate(t *testing.T) {
	repo := setupPartRepo(t)
	ctx := context.Background()

	part := &domain.Part{PartName: "Fan Belt A42", CategoryID: 1, BuildingID: 1, AvailableQuantity: 3}
	if err := repo.Create(ctx, part); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	applied, err := repo.DecrementStock(ctx, part.ID, 2)
	if err != nil {
		t.Fatalf("DecrementStock returned error: %v", err)
	}
	if !applied {
		t.Fatal("expected decrement to apply")
	}

	got, err := repo.GetByID(ctx, part.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.AvailableQuantity != 1 {
		t.Fatalf("expected quantity 1, got %d", got.AvailableQuantity)
	}
}

func TestDecrementStockRefusesShortageAndLeavesRowUntouched(t *testing.T) {
	repo := setupPartRepo(t)
	ctx := context.Background()

	part := &domain.Part{PartName: "HEPA Filter 24x24", CategoryID: 1, BuildingID: 1, AvailableQuantity: 3}
	if err := repo.Create(ctx, part); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	applied, err := repo.DecrementStock(ctx, part.ID, 5)
	if err != nil {
		t.Fatalf("DecrementStock returned error: %v", err)
	}
	if applied {
		t.Fatal("expected decrement to be refused")
	}

	got, err := repo.GetByID(ctx, part.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.AvailableQuantity != 3 {
		t.Fatalf("expected quantity to stay 3, got %d", got.AvailableQuantity)
	}
}

func TestDecrementStockUnknownPartAppliesNothing(t *testing.T) {
	repo := setupPartRepo(t)

	applied, err := repo.DecrementStock(context.Background(), 12345, 1)
	if err != nil {
		t.Fatalf("DecrementStock returned error: %v", err)
	}
	if applied {
		t.Fatal("expected no rows affected for unknown part")
	}
}

func TestDecrementStockNeverOverdrawsUnderContention(t *testing.T) {
	repo := setupPartRepo(t)
	ctx := context.Background()

	part := &domain.Part{PartName: "Bearing 6204", CategoryID: 1, BuildingID: 1, AvailableQuantity: 5}
	if err := repo.Create(ctx, part); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			applied, err := repo.DecrementStock(ctx, part.ID, 1)
			if err != nil {
				t.Errorf("DecrementStock returned error: %v", err)
				return
			}
			if applied {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 5 {
		t.Fatalf("expected exactly 5 successful draws, got %d", succeeded)
	}

	got, err := repo.GetByID(ctx, part.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.AvailableQuantity != 0 {
		t.Fatalf("expected quantity 0, got %d", got.AvailableQuantity)
	}
}

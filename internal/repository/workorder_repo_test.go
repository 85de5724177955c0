package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"cmms/internal/domain"
)

func setupWorkOrderRepo(t *testing.T) *WorkOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:wo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.WorkOrder{}, &domain.WorkOrderTask{}, &domain.WorkOrderPart{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewWorkOrderRepository(db)
}

func seedWorkOrder(t *testing.T, repo *WorkOrderRepository, wo domain.WorkOrder) domain.WorkOrder {
	t.Helper()
	if wo.StartDate.IsZero() {
		wo.StartDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		wo.DueDate = wo.StartDate.AddDate(0, 0, 7)
	}
	if err := repo.Create(context.Background(), &wo); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return wo
}

func TestFindByFilter_AssigneeBranchCoversDirectAndTeam(t *testing.T) {
	repo := setupWorkOrderRepo(t)
	ctx := context.Background()

	direct := seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "direct", AssigneeType: domain.AssigneeUser, AssignedTo: 3, SubmittedBy: 1,
	})
	viaTeam := seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "via team", AssigneeType: domain.AssigneeTeam, AssignedTo: 11, SubmittedBy: 1,
	})
	seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "other user", AssigneeType: domain.AssigneeUser, AssignedTo: 4, SubmittedBy: 1,
	})
	seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "other team", AssigneeType: domain.AssigneeTeam, AssignedTo: 99, SubmittedBy: 1,
	})
	// same numeric id as the user but assigned to a team, must not leak
	seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "team with user's id", AssigneeType: domain.AssigneeTeam, AssignedTo: 3, SubmittedBy: 1,
	})

	uid := int64(3)
	got, err := repo.FindByFilter(ctx, WorkOrderFilter{
		AssigneeUserID:  &uid,
		AssigneeTeamIDs: []int64{11},
	})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 work orders, got %d", len(got))
	}
	seen := map[int64]bool{}
	for _, wo := range got {
		seen[wo.ID] = true
	}
	if !seen[direct.ID] || !seen[viaTeam.ID] {
		t.Fatalf("expected ids %d and %d, got %v", direct.ID, viaTeam.ID, seen)
	}
}

func TestFindByFilter_NarrowsTightenButNeverWiden(t *testing.T) {
	repo := setupWorkOrderRepo(t)
	ctx := context.Background()

	mine := seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "mine high", SubmittedBy: 7, Priority: domain.PriorityHigh,
		AssigneeType: domain.AssigneeUser, AssignedTo: 3,
	})
	seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "mine low", SubmittedBy: 7, Priority: domain.PriorityLow,
		AssigneeType: domain.AssigneeUser, AssignedTo: 3,
	})
	seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "theirs high", SubmittedBy: 8, Priority: domain.PriorityHigh,
		AssigneeType: domain.AssigneeUser, AssignedTo: 3,
	})

	submitter := int64(7)
	got, err := repo.FindByFilter(ctx, WorkOrderFilter{
		SubmittedBy: &submitter,
		Priority:    string(domain.PriorityHigh),
	})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only work order %d, got %d results", mine.ID, len(got))
	}
}

func TestReplaceTasksKeepsPositionsSequential(t *testing.T) {
	repo := setupWorkOrderRepo(t)
	ctx := context.Background()

	wo := seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "with tasks", AssigneeType: domain.AssigneeUser, AssignedTo: 3, SubmittedBy: 7,
		Tasks: []domain.WorkOrderTask{
			{TaskName: "old one"},
			{TaskName: "old two"},
		},
	})

	err := repo.ReplaceTasks(ctx, wo.ID, []domain.WorkOrderTask{
		{TaskName: "new one"},
		{TaskName: "new two"},
		{TaskName: "new three"},
	})
	if err != nil {
		t.Fatalf("ReplaceTasks returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, wo.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if len(got.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got.Tasks))
	}
	for i, task := range got.Tasks {
		if task.Position != i {
			t.Fatalf("expected task %d at position %d, got %d", i, i, task.Position)
		}
	}
	if got.Tasks[0].TaskName != "new one" {
		t.Fatalf("expected first task 'new one', got %q", got.Tasks[0].TaskName)
	}
}

func TestDeleteRemovesChildRows(t *testing.T) {
	repo := setupWorkOrderRepo(t)
	ctx := context.Background()

	wo := seedWorkOrder(t, repo, domain.WorkOrder{
		Title: "doomed", AssigneeType: domain.AssigneeUser, AssignedTo: 3, SubmittedBy: 7,
		Tasks: []domain.WorkOrderTask{{TaskName: "task"}},
		Parts: []domain.WorkOrderPart{{PartID: 10, Quantity: 2}},
	})

	if err := repo.Delete(ctx, wo.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := repo.GetByID(ctx, wo.ID); err == nil {
		t.Fatal("expected work order to be gone")
	}

	var tasks int64
	repo.db.Model(&domain.WorkOrderTask{}).Where("work_order_id = ?", wo.ID).Count(&tasks)
	if tasks != 0 {
		t.Fatalf("expected 0 orphan tasks, got %d", tasks)
	}
	var parts int64
	repo.db.Model(&domain.WorkOrderPart{}).Where("work_order_id = ?", wo.ID).Count(&parts)
	if parts != 0 {
		t.Fatalf("expected 0 orphan parts, got %d", parts)
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cmms/internal/database"
	"cmms/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "cmms.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM asset_usage_histories")
	db.Exec("DELETE FROM work_order_parts")
	db.Exec("DELETE FROM work_order_tasks")
	db.Exec("DELETE FROM work_orders")
	db.Exec("DELETE FROM parts")
	db.Exec("DELETE FROM assets")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM buildings")
	db.Exec("DELETE FROM team_members")
	db.Exec("DELETE FROM teams")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@cmms.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FirstName:    "Site",
		LastName:     "Admin",
		CompanyName:  "Acme Facilities",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@cmms.io / admin123")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Email:        "manager@cmms.io",
		PasswordHash: string(managerHash),
		Role:         domain.RoleManager,
		FirstName:    "Maya",
		LastName:     "Ortiz",
		JobTitle:     "Facilities Manager",
		CompanyName:  "Acme Facilities",
	}
	db.Create(&manager)
	log.Println("Manager created: manager@cmms.io / manager123")

	technicians := []domain.User{}
	techNames := [][2]string{{"Tom", "Reyes"}, {"Lena", "Park"}, {"Omar", "Haddad"}}
	for i, name := range techNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("tech123"), bcrypt.DefaultCost)
		tech := domain.User{
			Email:        fmt.Sprintf("tech%d@cmms.io", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleTechnician,
			FirstName:    name[0],
			LastName:     name[1],
			JobTitle:     "Maintenance Technician",
			CompanyName:  manager.CompanyName,
			CreatedBy:    &manager.ID,
		}
		db.Create(&tech)
		technicians = append(technicians, tech)
	}

	// ================== TEAMS ==================
	log.Println("Creating teams...")
	hvacTeam := domain.Team{
		Name:      "HVAC Crew",
		Members:   []domain.User{technicians[1], technicians[2]},
		CreatedBy: manager.ID,
	}
	db.Create(&hvacTeam)

	// ================== BUILDINGS ==================
	log.Println("Creating buildings...")
	buildings := make([]domain.Building, 0, 2)
	for i, name := range []string{"North Plant", "Warehouse B"} {
		b := domain.Building{
			BuildingName:  name,
			Address:       fmt.Sprintf("%d Industrial Ave", 100+i),
			ContactPerson: "Front Desk",
			ContactNumber: fmt.Sprintf("+1 555 010%d", i),
			Email:         fmt.Sprintf("building%d@cmms.io", i+1),
			CreatedBy:     manager.ID,
		}
		db.Create(&b)
		buildings = append(buildings, b)
	}

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")
	for _, c := range []domain.Category{
		{Name: "Electrical", Type: domain.CategoryWorkOrder},
		{Name: "Plumbing", Type: domain.CategoryWorkOrder},
		{Name: "HVAC Unit", Type: domain.CategoryAsset},
		{Name: "Filters", Type: domain.CategoryPart},
	} {
		cat := c
		db.Create(&cat)
	}

	// ================== VENDORS ==================
	log.Println("Creating vendors...")
	db.Create(&domain.Vendor{
		VendorName:   "CoolAir Services",
		VendorType:   "Contractor",
		Price:        120,
		Address:      "9 Trade Park",
		ContactName:  "R. Singh",
		ContactPhone: "+1 555 0200",
		ContactEmail: "sales@coolair.example",
		CreatedBy:    manager.ID,
	})

	// ================== ASSETS ==================
	log.Println("Creating assets...")
	purchase := time.Now().AddDate(-2, 0, 0)
	rooftop := domain.Asset{
		AssetName:    "Rooftop HVAC Unit 1",
		BuildingID:   buildings[0].ID,
		Category:     "HVAC Unit",
		Status:       domain.AssetActive,
		SerialNumber: "HV-2041-A",
		Manufacturer: "Carrier",
		PurchaseDate: &purchase,
		PurchaseCost: 18500,
		QRCode:       "seed-asset-hvac-1",
		CreatedBy:    manager.ID,
	}
	db.Create(&rooftop)

	// ================== PARTS ==================
	log.Println("Creating parts...")
	parts := make([]domain.Part, 0, 2)
	for _, p := range []domain.Part{
		{PartName: "HEPA Filter 24x24", PartNumber: "F-2424", CategoryID: 4, AvailableQuantity: 12, BuildingID: buildings[0].ID},
		{PartName: "Fan Belt A42", PartNumber: "B-A42", CategoryID: 4, AvailableQuantity: 3, BuildingID: buildings[0].ID},
	} {
		part := p
		db.Create(&part)
		parts = append(parts, part)
	}

	// ================== WORK ORDERS ==================
	log.Println("Creating work orders...")
	start := time.Now().Truncate(24 * time.Hour)
	wo := domain.WorkOrder{
		Title:        "Quarterly HVAC service",
		Description:  "Replace filters and inspect belts on the rooftop unit",
		Category:     "HVAC",
		Priority:     domain.PriorityHigh,
		Status:       domain.StatusOpen,
		StartDate:    start,
		DueDate:      start.AddDate(0, 0, 7),
		BuildingID:   buildings[0].ID,
		AssetID:      &rooftop.ID,
		AssigneeType: domain.AssigneeTeam,
		AssignedTo:   hvacTeam.ID,
		Tasks: []domain.WorkOrderTask{
			{Position: 0, TaskName: "Swap filters", TaskType: "checkbox"},
			{Position: 1, TaskName: "Inspect fan belt", TaskType: "checkbox"},
		},
		Parts: []domain.WorkOrderPart{
			{PartID: parts[0].ID, Quantity: 2},
		},
		SubmittedBy: manager.ID,
	}
	db.Create(&wo)

	db.Model(&domain.Part{}).
		Where("id = ?", parts[0].ID).
		Update("available_quantity", parts[0].AvailableQuantity-2)

	db.Create(&domain.AssetUsageHistory{
		WorkOrderID: wo.ID,
		AssetID:     rooftop.ID,
		Description: wo.Description,
	})

	directWO := domain.WorkOrder{
		Title:        "Replace lobby light fixture",
		Description:  "Fixture flickering near the north entrance",
		Category:     "Electrical",
		Priority:     domain.PriorityMedium,
		Status:       domain.StatusOpen,
		StartDate:    start,
		DueDate:      start.AddDate(0, 0, 3),
		BuildingID:   buildings[1].ID,
		AssigneeType: domain.AssigneeUser,
		AssignedTo:   technicians[0].ID,
		Tasks: []domain.WorkOrderTask{
			{Position: 0, TaskName: "Replace fixture", TaskType: "checkbox"},
		},
		SubmittedBy: manager.ID,
	}
	db.Create(&directWO)

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@cmms.io / admin123")
	log.Println("Manager: manager@cmms.io / manager123")
	log.Println("Technicians: tech1@cmms.io ... tech3@cmms.io / tech123")
}

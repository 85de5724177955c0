package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cmms/internal/database"
	"cmms/internal/middleware"
	"cmms/internal/modules/asset"
	"cmms/internal/modules/auth"
	"cmms/internal/modules/building"
	"cmms/internal/modules/category"
	"cmms/internal/modules/part"
	"cmms/internal/modules/team"
	"cmms/internal/modules/user"
	"cmms/internal/modules/vendor"
	"cmms/internal/modules/workorder"
	jwtsvc "cmms/internal/pkg/jwt"
	"cmms/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	usageRepo := repository.NewAssetUsageRepository(db)
	partRepo := repository.NewPartRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	teamHandler := team.NewHandler(team.NewService(teamRepo, userRepo))
	buildingHandler := building.NewHandler(building.NewService(buildingRepo))
	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	vendorHandler := vendor.NewHandler(vendor.NewService(vendorRepo))
	assetHandler := asset.NewHandler(asset.NewService(assetRepo, usageRepo))
	partHandler := part.NewHandler(part.NewService(partRepo))
	workOrderHandler := workorder.NewHandler(workorder.NewService(
		workOrderRepo,
		partRepo,
		userRepo,
		teamRepo,
		usageRepo,
	))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterRoutes(protected)
			teamHandler.RegisterRoutes(protected)
			buildingHandler.RegisterRoutes(protected)
			categoryHandler.RegisterRoutes(protected)
			vendorHandler.RegisterRoutes(protected)
			assetHandler.RegisterRoutes(protected)
			partHandler.RegisterRoutes(protected)
			workOrderHandler.RegisterRoutes(protected)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"fieldservice/cmd"
	inhttp "fieldservice/internal/adapters/in/http"
	"fieldservice/internal/adapters/out/postgres/technicianrepo"
	"fieldservice/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(config.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.AutoMigrate(&technicianrepo.TechnicianDTO{}, &technicianrepo.SkillDTO{}); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	root := cmd.NewCompositionRoot(db, nil, nil, logger)

	server := inhttp.NewTechnicianServer(
		root.CreateCreateTechnicianCommandHandler(),
		root.CreateUpdateTechnicianCommandHandler(),
		root.CreateDeleteTechnicianCommandHandler(),
		root.CreateChangeTechnicianStatusCommandHandler(),
		root.CreateChangeTechnicianLocationCommandHandler(),
		root.CreateGetTechniciansQueryHandler(),
		root.CreateGetTechnicianStatusCountsQueryHandler(),
		root.CreateTechnicianRepository(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

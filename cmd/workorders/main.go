package main

import (
	"fmt"
	"net/http"

	"fieldservice/cmd"
	inhttp "fieldservice/internal/adapters/in/http"
	"fieldservice/internal/adapters/out/directory"
	"fieldservice/internal/adapters/out/notify"
	"fieldservice/internal/adapters/out/postgres/workorderrepo"
	"fieldservice/internal/jobs"
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

	if err = db.AutoMigrate(&workorderrepo.WorkOrderDTO{}, &workorderrepo.LineItemDTO{}); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	notifier := notify.NewDispatcherWithBuffer(changeSink(config, logger), logger, config.EventBufferSize)
	defer notifier.Stop()

	directoryClient := directory.NewClientWithTimeout(config.DirectoryBaseURL, config.DirectoryTimeout)

	root := cmd.NewCompositionRoot(db, directoryClient, notifier, logger)

	jobManager := jobs.NewJobManager(
		root.CreateWorkOrderUoWFactory(),
		root.CreateAssignWorkOrderCommandHandler(),
		config.JobSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	server := inhttp.NewWorkOrderServer(
		root.CreateCreateWorkOrderCommandHandler(),
		root.CreateUpdateWorkOrderCommandHandler(),
		root.CreateDeleteWorkOrderCommandHandler(),
		root.CreateAssignWorkOrderCommandHandler(),
		root.CreateUnassignWorkOrderCommandHandler(),
		root.CreateChangeWorkOrderStatusCommandHandler(),
		root.CreateGetWorkOrdersQueryHandler(),
		root.CreateGetWorkOrderQueryHandler(),
		root.CreateGetStatusCountsQueryHandler(),
		root.CreateGetTechnicianCountsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

// changeSink prefers the webhook when one is configured and falls back to
// structured logging otherwise.
func changeSink(config cmd.Config, logger *zap.Logger) notify.Sink {
	if config.ChangeWebhookURL != "" {
		return notify.NewWebhookSink(config.ChangeWebhookURL)
	}
	return notify.NewLogSink(logger)
}

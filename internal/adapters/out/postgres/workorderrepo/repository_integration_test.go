package workorderrepo_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/adapters/out/postgres/workorderrepo"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// WorkOrderRepositoryIntegrationTestSuite provides integration tests for
// WorkOrderRepository using PostgreSQL containers to verify persistence
// behavior including line-item ownership and optimistic concurrency.
type WorkOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *workorderrepo.GormWorkOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.LineItemDTO{},
	))
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE work_orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = workorderrepo.NewGormWorkOrderRepository(suite.db, suite.tracker)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) createTestWorkOrder() *workorder.WorkOrder {
	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "Replace water heater",
		"customer reports no hot water", workorder.PriorityHigh,
		workorder.CustomerInfo{Name: "Dana Reyes", Phone: "555-0100", Email: "dana@example.com"},
		"12 Harbor Rd")
	suite.Require().NoError(err)
	return wo
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	wo := suite.createTestWorkOrder()
	suite.Require().NoError(wo.SetEstimates(90, decimal.NewFromInt(300), nil))
	suite.Require().NoError(wo.AddLineItem("water heater 50gal", 1, decimal.NewFromFloat(549.99)))
	suite.Require().NoError(wo.AddLineItem("copper fitting", 4, decimal.NewFromFloat(3.25)))

	suite.Require().NoError(suite.repository.Add(ctx, wo))

	restored, err := suite.repository.Get(ctx, wo.ID())
	suite.Require().NoError(err)

	suite.True(wo.IsEqual(restored))
	suite.Equal(wo.Title(), restored.Title())
	suite.Equal(workorder.StatusPending, restored.Status())
	suite.Equal(wo.Customer(), restored.Customer())
	suite.Equal(90, restored.EstimatedDurationMinutes())
	suite.True(wo.EstimatedCost().Equal(restored.EstimatedCost()))
	suite.Nil(restored.AssignedTechnician())
	suite.Equal(1, restored.Version())

	items := restored.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal("water heater 50gal", items[0].Name())
	suite.Equal(4, items[1].Quantity())
	suite.True(decimal.NewFromFloat(3.25).Equal(items[1].UnitCost()))
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()

	wo := suite.createTestWorkOrder()
	suite.Require().NoError(suite.repository.Add(ctx, wo))

	technicianID := kernel.NewUUID()
	suite.Require().NoError(wo.Assign(technicianID))
	suite.Require().NoError(suite.repository.Update(ctx, wo))

	restored, err := suite.repository.Get(ctx, wo.ID())
	suite.Require().NoError(err)
	suite.Equal(workorder.StatusAssigned, restored.Status())
	suite.Require().NotNil(restored.AssignedTechnician())
	suite.True(technicianID.IsEqual(*restored.AssignedTechnician()))
	suite.Equal(2, restored.Version(), "version advances on update")
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestUpdate_ClearsTechnicianOnUnassign() {
	ctx := context.Background()

	wo := suite.createTestWorkOrder()
	suite.Require().NoError(wo.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, wo))

	_, err := wo.Unassign()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, wo))

	restored, err := suite.repository.Get(ctx, wo.ID())
	suite.Require().NoError(err)
	suite.Equal(workorder.StatusPending, restored.Status())
	suite.Nil(restored.AssignedTechnician())
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ConcurrencyConflict() {
	ctx := context.Background()

	wo := suite.createTestWorkOrder()
	suite.Require().NoError(suite.repository.Add(ctx, wo))

	// First writer wins
	first, err := suite.repository.Get(ctx, wo.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(first.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second writer loaded the same version and must be rejected
	suite.Require().NoError(wo.Assign(kernel.NewUUID()))
	err = suite.repository.Update(ctx, wo)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestDelete_RemovesLineItems() {
	ctx := context.Background()

	wo := suite.createTestWorkOrder()
	suite.Require().NoError(wo.AddLineItem("thermostat", 1, decimal.NewFromInt(45)))
	suite.Require().NoError(suite.repository.Add(ctx, wo))

	suite.Require().NoError(suite.repository.Delete(ctx, wo.ID()))

	_, err := suite.repository.Get(ctx, wo.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&workorderrepo.LineItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_OldestFirst() {
	ctx := context.Background()

	older := suite.createTestWorkOrder()
	suite.Require().NoError(suite.repository.Add(ctx, older))

	time.Sleep(10 * time.Millisecond)

	newer := suite.createTestWorkOrder()
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	assigned := suite.createTestWorkOrder()
	suite.Require().NoError(assigned.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	found, err := suite.repository.GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.True(older.IsEqual(found))
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_NonePending() {
	_, err := suite.repository.GetFirstInPendingStatus(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryIntegrationTestSuite) TestGetActiveWorkloads_CountsPerTechnician() {
	ctx := context.Background()

	busyTechnician := kernel.NewUUID()
	idleTechnician := kernel.NewUUID()

	for range 2 {
		wo := suite.createTestWorkOrder()
		suite.Require().NoError(wo.Assign(busyTechnician))
		suite.Require().NoError(suite.repository.Add(ctx, wo))
	}

	inProgress := suite.createTestWorkOrder()
	suite.Require().NoError(inProgress.Assign(busyTechnician))
	suite.Require().NoError(inProgress.ChangeStatus(workorder.StatusInProgress))
	suite.Require().NoError(suite.repository.Add(ctx, inProgress))

	completed := suite.createTestWorkOrder()
	suite.Require().NoError(completed.Assign(idleTechnician))
	suite.Require().NoError(completed.ChangeStatus(workorder.StatusCompleted))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	pending := suite.createTestWorkOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	workloads, err := suite.repository.GetActiveWorkloads(ctx)
	suite.Require().NoError(err)

	suite.Len(workloads, 1, "terminal and pending work orders do not count")
	suite.Equal(3, workloads[busyTechnician])
}

func TestWorkOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderRepositoryIntegrationTestSuite))
}

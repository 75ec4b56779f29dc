package commands_test

import (
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo := assignedWorkOrder(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateWorkOrderCommand(wo.ID(), "Replace water heater and valve",
		"customer reports leaking relief valve", workorder.PriorityUrgent,
		workorder.CustomerInfo{Name: "Dana Reyes", Phone: "555-0100"}, "12 Harbor Rd, Unit B",
		120, decimal.NewFromInt(450), nil)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, wo.ID()).Return(wo, nil).Once(),
		repo.On("Update", mock.Anything, wo).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)

	h := commands.NewUpdateWorkOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Replace water heater and valve", wo.Title())
	assert.Equal(t, workorder.PriorityUrgent, wo.Priority())
	assert.Equal(t, workorder.StatusAssigned, wo.Status(), "update leaves the lifecycle alone")
	assert.NotNil(t, wo.AssignedTechnician())
	assert.Equal(t, []events.EventType{events.EventWorkOrderUpdated}, notifier.Types())
}

func TestUpdateWorkOrderCommandHandler_Handle_WorkOrderNotFound(t *testing.T) {
	ctx := t.Context()
	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateWorkOrderCommand(workOrderID, "Replace water heater", "",
		workorder.PriorityNormal, workorder.CustomerInfo{Name: "Dana Reyes"}, "12 Harbor Rd",
		90, decimal.NewFromInt(300), nil)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	repo.On("Get", mock.Anything, workOrderID).
		Return(nil, errs.NewObjectNotFoundError("work_order_id", workOrderID)).Once()

	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)

	h := commands.NewUpdateWorkOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, notifier.Events())
}

func TestUpdateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockWorkOrderUoWFactory)

	h := commands.NewUpdateWorkOrderCommandHandler(factory, new(RecordingNotifier))
	_, err := h.Handle(t.Context(), commands.UpdateWorkOrderCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateWorkOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateWorkOrderCommand_RejectsEmptyTitle(t *testing.T) {
	_, err := commands.NewUpdateWorkOrderCommand(kernel.NewUUID(), "", "",
		workorder.PriorityNormal, workorder.CustomerInfo{Name: "Dana Reyes"}, "12 Harbor Rd",
		90, decimal.NewFromInt(300), nil)

	require.Error(t, err)
}

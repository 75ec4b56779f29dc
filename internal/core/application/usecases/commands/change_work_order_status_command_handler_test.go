package commands_test

import (
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeWorkOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo := assignedWorkOrder(t, kernel.NewUUID())
	cmd, err := commands.NewChangeWorkOrderStatusCommand(wo.ID(), workorder.StatusInProgress)
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

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.StatusInProgress, wo.Status())
	assert.NotNil(t, wo.StartedAt())

	published := notifier.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventWorkOrderStatusChanged, published[0].Type)
	payload, ok := published[0].Payload.(events.StatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "ASSIGNED", payload.OldStatus)
	assert.Equal(t, "IN_PROGRESS", payload.NewStatus)
}

func TestChangeWorkOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	wo := pendingWorkOrder(t)
	cmd, err := commands.NewChangeWorkOrderStatusCommand(wo.ID(), workorder.StatusPending)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	repo.On("Get", mock.Anything, wo.ID()).Return(wo, nil).Once()

	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, notifier.Events(), "no event for an unchanged status")
}

func TestChangeWorkOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	wo := pendingWorkOrder(t)
	cmd, err := commands.NewChangeWorkOrderStatusCommand(wo.ID(), workorder.StatusOnHold)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	repo.On("Get", mock.Anything, wo.ID()).Return(wo, nil).Once()

	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(RecordingNotifier)

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, workorder.ErrInvalidTransition)

	var transitionErr *workorder.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, workorder.StatusPending, transitionErr.From)
	assert.Equal(t, workorder.StatusOnHold, transitionErr.To)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.Events())
}

func TestChangeWorkOrderStatusCommandHandler_Handle_TerminalCompletion(t *testing.T) {
	ctx := t.Context()
	wo := assignedWorkOrder(t, kernel.NewUUID())
	require.NoError(t, wo.ChangeStatus(workorder.StatusInProgress))
	cmd, err := commands.NewChangeWorkOrderStatusCommand(wo.ID(), workorder.StatusCompleted)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	repo.On("Get", mock.Anything, wo.ID()).Return(wo, nil).Once()
	repo.On("Update", mock.Anything, wo).Return(nil).Once()

	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory, new(RecordingNotifier))
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.StatusCompleted, wo.Status())
	assert.NotNil(t, wo.CompletedAt())
	assert.NotNil(t, wo.AssignedTechnician(), "completion keeps the assignment for history")
}

func TestChangeWorkOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockWorkOrderUoWFactory)

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory, new(RecordingNotifier))
	_, err := h.Handle(t.Context(), commands.ChangeWorkOrderStatusCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeWorkOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewChangeWorkOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewChangeWorkOrderStatusCommand(kernel.NewUUID(), workorder.Status(0))

	require.Error(t, err)
}

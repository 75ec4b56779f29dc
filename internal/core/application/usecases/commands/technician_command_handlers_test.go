package commands_test

import (
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTechnicianUoW(repo *MockTechnicianRepository) (*MockTechnicianUoW, *MockTechnicianUoWFactory) {
	uow := new(MockTechnicianUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("TechnicianRepository").Return(repo).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockTechnicianUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestCreateTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	technicianID := kernel.NewUUID()
	cmd, err := commands.NewCreateTechnicianCommand(technicianID, "Alex Kim",
		"alex@example.com", "555-0100", "Downtown", []string{"plumbing", "hvac"},
		6, decimal.NewFromInt(85))
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	var persisted *technician.Technician
	repo.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*technician.Technician)
	}).Return(nil).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewCreateTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.True(t, technicianID.IsEqual(persisted.ID()))
	assert.Equal(t, technician.StatusAvailable, persisted.Status(), "new technicians start available")
	assert.Equal(t, technician.DefaultMaxConcurrentOrders, persisted.MaxConcurrentOrders())
	assert.Equal(t, []string{"plumbing", "hvac"}, persisted.Skills())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestCreateTechnicianCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTechnicianCommand(kernel.NewUUID(), "Alex Kim",
		"", "", "", nil, 0, decimal.Zero)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidError("technician")).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewCreateTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateTechnicianCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockTechnicianUoWFactory)

	h := commands.NewCreateTechnicianCommandHandler(factory)
	err := h.Handle(t.Context(), commands.CreateTechnicianCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateTechnicianCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tech := availableTechnician(t, "Alex Kim", 6)
	require.NoError(t, tech.ChangeStatus(technician.StatusOnBreak))
	cmd, err := commands.NewUpdateTechnicianCommand(tech.ID(), "Alex Kim",
		"alex@example.com", "555-0100", "Northside", []string{"plumbing", "electrical"},
		7, decimal.NewFromInt(95), 5)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, tech.ID()).Return(tech, nil).Once()
	repo.On("Update", mock.Anything, tech).Return(nil).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewUpdateTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Northside", tech.CurrentLocation())
	assert.Equal(t, []string{"plumbing", "electrical"}, tech.Skills())
	assert.Equal(t, 5, tech.MaxConcurrentOrders())
	assert.Equal(t, technician.StatusOnBreak, tech.Status(), "profile update leaves availability alone")
	uow.AssertCalled(t, "Commit", ctx)
}

func TestUpdateTechnicianCommandHandler_Handle_TechnicianNotFound(t *testing.T) {
	ctx := t.Context()
	technicianID := kernel.NewUUID()
	cmd, err := commands.NewUpdateTechnicianCommand(technicianID, "Alex Kim",
		"", "", "", nil, 0, decimal.Zero, 1)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, technicianID).
		Return(nil, errs.NewObjectNotFoundError("technician_id", technicianID)).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewUpdateTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeTechnicianStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tech := availableTechnician(t, "Alex Kim", 6)
	cmd, err := commands.NewChangeTechnicianStatusCommand(tech.ID(), technician.StatusOffline)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, tech.ID()).Return(tech, nil).Once()
	repo.On("Update", mock.Anything, tech).Return(nil).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewChangeTechnicianStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, technician.StatusOffline, tech.Status())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestChangeTechnicianLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tech := availableTechnician(t, "Alex Kim", 6)
	cmd, err := commands.NewChangeTechnicianLocationCommand(tech.ID(), "East district")
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, tech.ID()).Return(tech, nil).Once()
	repo.On("Update", mock.Anything, tech).Return(nil).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewChangeTechnicianLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "East district", tech.CurrentLocation())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestNewChangeTechnicianStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewChangeTechnicianStatusCommand(kernel.NewUUID(), technician.Status(0))

	require.Error(t, err)
}

func TestDeleteTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tech := availableTechnician(t, "Alex Kim", 6)
	cmd, err := commands.NewDeleteTechnicianCommand(tech.ID())
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, tech.ID()).Return(tech, nil).Once()
	repo.On("Delete", mock.Anything, tech.ID()).Return(nil).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewDeleteTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertCalled(t, "Commit", ctx)
}

func TestDeleteTechnicianCommandHandler_Handle_TechnicianNotFound(t *testing.T) {
	ctx := t.Context()
	technicianID := kernel.NewUUID()
	cmd, err := commands.NewDeleteTechnicianCommand(technicianID)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	repo.On("Get", mock.Anything, technicianID).
		Return(nil, errs.NewObjectNotFoundError("technician_id", technicianID)).Once()

	uow, factory := newTechnicianUoW(repo)

	h := commands.NewDeleteTechnicianCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

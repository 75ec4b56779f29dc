package commands_test

import (
	"context"
	"sync"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetActiveWorkloads(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockTechnicianRepository struct{ mock.Mock }

func (m *MockTechnicianRepository) Add(ctx context.Context, t *technician.Technician) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*technician.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTechnicianRepository) GetAllAvailable(ctx context.Context) ([]*technician.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*technician.Technician), args.Error(1)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockTechnicianUoW struct{ mock.Mock }

func (m *MockTechnicianUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnicianUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnicianUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTechnicianUoW) TechnicianRepository() ports.TechnicianRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnicianRepository)
}

type MockTechnicianUoWFactory struct{ mock.Mock }

func (m *MockTechnicianUoWFactory) Create() commands.TechnicianUoW {
	args := m.Called()
	return args.Get(0).(commands.TechnicianUoW)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) UpdateStatus(ctx context.Context, id kernel.UUID, status technician.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTechnicianDirectory) GetName(ctx context.Context, id kernel.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockTechnicianDirectory) GetAvailable(ctx context.Context) ([]*technician.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*technician.Technician), args.Error(1)
}

// RecordingNotifier captures published events for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []events.Event
}

func (n *RecordingNotifier) Publish(event events.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *RecordingNotifier) Events() []events.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]events.Event, len(n.events))
	copy(out, n.events)
	return out
}

func (n *RecordingNotifier) Types() []events.EventType {
	types := make([]events.EventType, 0)
	for _, e := range n.Events() {
		types = append(types, e.Type)
	}
	return types
}

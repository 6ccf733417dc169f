package commands_test

import (
	"context"
	"time"

	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) FindLatestPickupRequested(
	ctx context.Context, clientID, vehicleID kernel.UUID,
) (*request.Request, error) {
	args := m.Called(ctx, clientID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) FindLatestPickupForClientVehicle(
	ctx context.Context, clientID, vehicleID kernel.UUID,
) (*request.Request, error) {
	args := m.Called(ctx, clientID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) SchedulePickup(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(
	ctx context.Context, aggregate *request.Request, expectedFrom request.Status,
) error {
	args := m.Called(ctx, aggregate, expectedFrom)
	return args.Error(0)
}

func (m *MockRequestRepository) ProposePickupDate(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) AddEvent(ctx context.Context, event request.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockRequestRepository) GetScheduledPickupsStartingBetween(
	ctx context.Context, from, to time.Time,
) ([]*request.Request, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*request.Request), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) SetStatus(ctx context.Context, vehicleID kernel.UUID, status string) error {
	args := m.Called(ctx, vehicleID, status)
	return args.Error(0)
}

type MockTimelineWriter struct{ mock.Mock }

func (m *MockTimelineWriter) Append(
	ctx context.Context, vehicleID kernel.UUID, status string, notes *string,
) error {
	args := m.Called(ctx, vehicleID, status, notes)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(
	ctx context.Context, toProfileID kernel.UUID, template string, payload map[string]any,
) error {
	args := m.Called(ctx, toProfileID, template, payload)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) Timeline() ports.TimelineWriter {
	args := m.Called()
	return args.Get(0).(ports.TimelineWriter)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createScheduledPickup(t *testing.T, clientID, vehicleID kernel.UUID, isoDate string) *request.Request {
	t.Helper()

	desired, err := time.ParseInLocation(request.DateLayout, isoDate, time.UTC)
	require.NoError(t, err)
	req := createPendingPickup(t, clientID, vehicleID, &desired)

	window, err := request.MakeDefaultWindowFromDate(isoDate)
	require.NoError(t, err)
	require.NoError(t, req.Schedule(window, time.Now().UTC()))
	return req
}

func TestRemindScheduledPickupsCommandHandler_Handle_NotifiesEachClient(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRemindScheduledPickupsCommand()

	first := createScheduledPickup(t, kernel.NewUUID(), kernel.NewUUID(), "2025-03-10")
	second := createScheduledPickup(t, kernel.NewUUID(), kernel.NewUUID(), "2025-03-10")

	repo := new(MockRequestRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("GetScheduledPickupsStartingBetween",
			ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]*request.Request{first, second}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, first.ClientID(), ports.NotificationPickupReminder, map[string]any{
			"vehicleId":   first.VehicleID().String(),
			"requestId":   first.ID().String(),
			"windowStart": "2025-03-10T09:00:00.000Z",
		}).Return(nil).Once(),
		notifier.On("Send", ctx, second.ClientID(), ports.NotificationPickupReminder, map[string]any{
			"vehicleId":   second.VehicleID().String(),
			"requestId":   second.ID().String(),
			"windowStart": "2025-03-10T09:00:00.000Z",
		}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemindScheduledPickupsCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRemindScheduledPickupsCommandHandler_Handle_NothingUpcoming(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRemindScheduledPickupsCommand()

	repo := new(MockRequestRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("GetScheduledPickupsStartingBetween",
			ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]*request.Request{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	handler := commands.NewRemindScheduledPickupsCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRemindScheduledPickupsCommandHandler_Handle_FirstSendErrorAfterAllAttempts(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRemindScheduledPickupsCommand()

	first := createScheduledPickup(t, kernel.NewUUID(), kernel.NewUUID(), "2025-03-10")
	second := createScheduledPickup(t, kernel.NewUUID(), kernel.NewUUID(), "2025-03-10")

	repo := new(MockRequestRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(repo).Once(),
		repo.On("GetScheduledPickupsStartingBetween",
			ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]*request.Request{first, second}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, first.ClientID(), ports.NotificationPickupReminder, mock.Anything).
			Return(errors.New("send failed")).Once(),
		notifier.On("Send", ctx, second.ClientID(), ports.NotificationPickupReminder, mock.Anything).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRemindScheduledPickupsCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	// Both sends are attempted; the first failure is what comes back.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send failed")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"fleetyard/internal/adapters/out/postgres/requestrepo"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RequestRepositoryIntegrationTestSuite verifies persistence behavior against
// a real PostgreSQL instance, including the conditional status writes.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requestrepo.GormRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&requestrepo.RequestDTO{}, &requestrepo.EventDTO{}))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_requests, delivery_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = requestrepo.NewGormRequestRepository(suite.db, suite.tracker)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequestRepositoryIntegrationTestSuite) createPickup(desiredDate *time.Time) *request.Request {
	req, err := request.NewPickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, desiredDate, kernel.NewUUID())
	suite.Require().NoError(err)
	return req
}

func (suite *RequestRepositoryIntegrationTestSuite) createDelivery(fee *float64) *request.Request {
	desired := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	req, err := request.NewDeliveryRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		kernel.NewUUID(), &desired, fee, kernel.NewUUID())
	suite.Require().NoError(err)
	return req
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAddAndGetByID_RoundTrip() {
	ctx := context.Background()

	desired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := suite.createPickup(&desired)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	loaded, err := suite.repository.GetByID(ctx, req.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(req.ID()))
	suite.True(loaded.VehicleID().IsEqual(req.VehicleID()))
	suite.True(loaded.ClientID().IsEqual(req.ClientID()))
	suite.Equal(request.Pickup, loaded.Kind())
	suite.Equal(request.Requested, loaded.Status())
	suite.Equal("2025-03-10", loaded.DesiredDateString())
	suite.Nil(loaded.Window())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAddAndGetByID_DeliveryKeepsKindAndFee() {
	ctx := context.Background()

	fee := 150.0
	req := suite.createDelivery(&fee)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	loaded, err := suite.repository.GetByID(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Delivery, loaded.Kind())
	suite.Require().NotNil(loaded.FeeAmount())
	suite.InDelta(150.0, *loaded.FeeAmount(), 0.001)
	suite.Require().NotNil(loaded.AddressID())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByID(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestFindLatestPickupRequested_PicksNewest() {
	ctx := context.Background()

	clientID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	older, err := request.NewPickupRequest(
		kernel.NewUUID(), vehicleID, clientID, nil, nil, clientID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, older))

	// created_at has microsecond resolution; make the ordering unambiguous
	time.Sleep(10 * time.Millisecond)

	desired := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	newer, err := request.NewPickupRequest(
		kernel.NewUUID(), vehicleID, clientID, nil, &desired, clientID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	found, err := suite.repository.FindLatestPickupRequested(ctx, clientID, vehicleID)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(newer.ID()))
}

func (suite *RequestRepositoryIntegrationTestSuite) TestFindLatestPickupRequested_IgnoresDeliveries() {
	ctx := context.Background()

	fee := 50.0
	delivery := suite.createDelivery(&fee)
	suite.Require().NoError(suite.repository.Add(ctx, delivery))

	_, err := suite.repository.FindLatestPickupRequested(ctx, delivery.ClientID(), delivery.VehicleID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestSchedulePickup_PersistsWindow() {
	ctx := context.Background()

	desired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := suite.createPickup(&desired)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	window, err := request.MakeDefaultWindowFromDate("2025-03-10")
	suite.Require().NoError(err)
	suite.Require().NoError(req.Schedule(window, time.Now().UTC()))

	suite.Require().NoError(suite.repository.SchedulePickup(ctx, req))

	loaded, err := suite.repository.GetByID(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Scheduled, loaded.Status())
	suite.Require().NotNil(loaded.Window())
	suite.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), loaded.Window().Start())
	suite.Equal(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), loaded.Window().End())
	suite.Require().NotNil(loaded.ScheduledAt())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestSchedulePickup_SecondApprovalConflicts() {
	ctx := context.Background()

	desired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := suite.createPickup(&desired)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	window, err := request.MakeDefaultWindowFromDate("2025-03-10")
	suite.Require().NoError(err)
	suite.Require().NoError(req.Schedule(window, time.Now().UTC()))
	suite.Require().NoError(suite.repository.SchedulePickup(ctx, req))

	// A second writer that read the request while it was still Requested.
	err = suite.repository.SchedulePickup(ctx, req)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPreconditionFailed)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdateStatus_Conditional() {
	ctx := context.Background()

	fee := 80.0
	req := suite.createDelivery(&fee)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	suite.Require().NoError(req.Approve())
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, req, request.Requested))

	loaded, err := suite.repository.GetByID(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Approved, loaded.Status())

	// Replaying the same expected-from now misses: the row moved on.
	err = suite.repository.UpdateStatus(ctx, req, request.Requested)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPreconditionFailed)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestProposePickupDate_KeepsStatus() {
	ctx := context.Background()

	desired := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	req := suite.createPickup(&desired)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	_, err := req.ProposeDate(time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ProposePickupDate(ctx, req))

	loaded, err := suite.repository.GetByID(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Requested, loaded.Status())
	suite.Equal("2025-05-27", loaded.DesiredDateString())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAddEvent_AppendsTrail() {
	ctx := context.Background()

	desired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := suite.createPickup(&desired)
	suite.Require().NoError(suite.repository.Add(ctx, req))

	event, err := request.NewEvent(
		req.ID(), request.EventScheduled, request.Requested, request.Scheduled,
		kernel.NewUUID(), request.RoleAdmin, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddEvent(ctx, event))
	suite.Require().NoError(suite.repository.AddEvent(ctx, event))

	var count int64
	suite.Require().NoError(suite.db.Table("delivery_events").
		Where("request_id = ?", req.ID().Bytes()).Count(&count).Error)
	suite.EqualValues(2, count)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetScheduledPickupsStartingBetween() {
	ctx := context.Background()

	inWindow := suite.createPickup(nil)
	_, err := inWindow.ProposeDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	window, err := request.MakeDefaultWindowFromDate("2025-03-10")
	suite.Require().NoError(err)
	suite.Require().NoError(inWindow.Schedule(window, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, inWindow))

	outOfWindow := suite.createPickup(nil)
	_, err = outOfWindow.ProposeDate(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	laterWindow, err := request.MakeDefaultWindowFromDate("2025-03-12")
	suite.Require().NoError(err)
	suite.Require().NoError(outOfWindow.Schedule(laterWindow, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, outOfWindow))

	from := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	upcoming, err := suite.repository.GetScheduledPickupsStartingBetween(ctx, from, to)
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	suite.True(upcoming[0].ID().IsEqual(inWindow.ID()))
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}

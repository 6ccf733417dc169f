package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetyard/internal/adapters/out/postgres/requestrepo"
	"fleetyard/internal/core/application/usecases/queries"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRequestHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRequestHistoryQueryHandler
	repo      *requestrepo.GormRequestRepository
}

func (suite *GetRequestHistoryQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&requestrepo.RequestDTO{}, &requestrepo.EventDTO{}))

	suite.handler = queries.NewGetRequestHistoryQueryHandler(db)
	suite.repo = requestrepo.NewGormRequestRepository(db, &noopTracker{})
}

func (suite *GetRequestHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_requests, delivery_events").Error)
}

func (suite *GetRequestHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRequestHistoryQueryHandlerTestSuite) TestHandle_ReturnsTrailInOrder() {
	ctx := context.Background()

	desired := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	req, err := request.NewPickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, &desired, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, req))

	actorID := kernel.NewUUID()
	notes := "Data anterior: 2025-05-20"

	proposal, err := request.NewEvent(
		req.ID(), request.EventRescheduleProposed, request.Requested, request.Requested,
		actorID, request.RoleAdmin, &notes)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddEvent(ctx, proposal))

	scheduled, err := request.NewEvent(
		req.ID(), request.EventScheduled, request.Requested, request.Scheduled,
		actorID, request.RoleAdmin, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddEvent(ctx, scheduled))

	query, err := queries.NewGetRequestHistoryQuery(req.ID())
	suite.Require().NoError(err)

	history, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)

	suite.Equal(request.EventRescheduleProposed, history[0].Type)
	suite.Equal(request.Requested, history[0].StatusFrom)
	suite.Equal(request.Requested, history[0].StatusTo)
	suite.True(history[0].ActorID.IsEqual(actorID))
	suite.Equal(request.RoleAdmin, history[0].ActorRole)
	suite.Require().NotNil(history[0].Notes)
	suite.Equal(notes, *history[0].Notes)

	suite.Equal(request.EventScheduled, history[1].Type)
	suite.Equal(request.Scheduled, history[1].StatusTo)
	suite.Nil(history[1].Notes)
	suite.False(history[1].OccurredAt.Before(history[0].OccurredAt))
}

func (suite *GetRequestHistoryQueryHandlerTestSuite) TestHandle_UnknownRequestYieldsEmptyTrail() {
	ctx := context.Background()

	query, err := queries.NewGetRequestHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	history, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(history)
}

func TestGetRequestHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRequestHistoryQueryHandlerTestSuite))
}

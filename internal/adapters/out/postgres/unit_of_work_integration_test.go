package postgres_test

import (
	"context"
	"testing"
	"time"

	"fleetyard/internal/adapters/out/postgres"
	"fleetyard/internal/adapters/out/postgres/requestrepo"
	"fleetyard/internal/adapters/out/postgres/vehiclerepo"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives one
// transaction to every repository it hands out.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&requestrepo.RequestDTO{}, &requestrepo.EventDTO{},
		&vehiclerepo.VehicleDTO{}, &vehiclerepo.TimelineEntryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE delivery_requests, delivery_events, vehicles, vehicle_timeline").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createPickup() *request.Request {
	desired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req, err := request.NewPickupRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, &desired, kernel.NewUUID())
	suite.Require().NoError(err)
	return req
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllWrites() {
	ctx := context.Background()

	req := suite.createPickup()
	vehicleDTO := vehiclerepo.VehicleDTO{ID: req.VehicleID().Bytes(), Status: "Em Serviço"}
	suite.Require().NoError(suite.db.Create(&vehicleDTO).Error)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.RequestRepository().Add(ctx, req))
	suite.Require().NoError(uow.VehicleRepository().SetStatus(
		ctx, req.VehicleID(), request.VehicleAwaitingPickup))
	suite.Require().NoError(uow.Timeline().Append(
		ctx, req.VehicleID(), request.VehicleAwaitingPickup, nil))

	suite.Require().NoError(uow.Commit(ctx))

	var requestCount, timelineCount int64
	suite.Require().NoError(suite.db.Model(&requestrepo.RequestDTO{}).Count(&requestCount).Error)
	suite.Require().NoError(suite.db.Model(&vehiclerepo.TimelineEntryDTO{}).Count(&timelineCount).Error)
	suite.EqualValues(1, requestCount)
	suite.EqualValues(1, timelineCount)

	var dto vehiclerepo.VehicleDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", req.VehicleID().Bytes()).Error)
	suite.Equal(request.VehicleAwaitingPickup, dto.Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	req := suite.createPickup()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, req))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&requestrepo.RequestDTO{}).Count(&count).Error)
	suite.EqualValues(0, count)

	_, err := suite.factory.Create().RequestRepository().GetByID(ctx, req.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

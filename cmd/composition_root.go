package cmd

import (
	"fleetyard/internal/adapters/in/http"
	"fleetyard/internal/adapters/out/kafka"
	"fleetyard/internal/adapters/out/postgres"
	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/core/application/usecases/queries"
	"fleetyard/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   kafka.NewNotifier(configs.KafkaHost, configs.KafkaNotificationsTopic),
	}
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateApprovePickupCommandHandler() commands.ApprovePickupCommandHandler {
	return commands.NewApprovePickupCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApprovePickupByIDCommandHandler() commands.ApprovePickupByIDCommandHandler {
	return commands.NewApprovePickupByIDCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApproveDeliveryCommandHandler() commands.ApproveDeliveryCommandHandler {
	return commands.NewApproveDeliveryCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkInTransitCommandHandler() commands.MarkInTransitCommandHandler {
	return commands.NewMarkInTransitCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateProposePickupDateCommandHandler() commands.ProposePickupDateCommandHandler {
	return commands.NewProposePickupDateCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRemindScheduledPickupsCommandHandler() commands.RemindScheduledPickupsCommandHandler {
	return commands.NewRemindScheduledPickupsCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetOpenRequestsQueryHandler() queries.GetOpenRequestsQueryHandler {
	return queries.NewGetOpenRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequestHistoryQueryHandler() queries.GetRequestHistoryQueryHandler {
	return queries.NewGetRequestHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateApprovePickupCommandHandler(),
		c.CreateApprovePickupByIDCommandHandler(),
		c.CreateApproveDeliveryCommandHandler(),
		c.CreateMarkInTransitCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateProposePickupDateCommandHandler(),
		c.CreateGetOpenRequestsQueryHandler(),
		c.CreateGetRequestHistoryQueryHandler(),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/orderrepo"
	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	session   *services.StagingSession
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.ParcelDTO{}, &orderrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)

	directory, err := geography.NewDirectory([]geography.RegionDefinition{
		{ID: "dhaka", Name: "Dhaka", ServiceCenters: []geography.ServiceCenterDefinition{
			{ID: "dhanmondi", Name: "Dhanmondi"},
			{ID: "gulshan", Name: "Gulshan"},
		}},
	})
	suite.Require().NoError(err)
	suite.session = services.NewStagingSession(services.NewTariffCalculator(directory), directory)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_events").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Second Begin is a no-op, not a nested transaction.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit and rollback without an active transaction fail.
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrder() {
	ctx := context.Background()
	staged := suite.stageOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, staged))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertParcelCount(1)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, staged.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPendingPayment, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrder() {
	ctx := context.Background()
	staged := suite.stageOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, staged))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertParcelCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	// Repository operations outside a transaction execute immediately on
	// the main connection.
	ctx := context.Background()
	staged := suite.stageOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, staged))

	suite.assertParcelCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) stageOrder() *order.Order {
	sender, err := parcel.NewParty(
		"Sender", "+8801000000001", "dhaka", "dhanmondi", "House 12, Road 5", "Call on arrival")
	suite.Require().NoError(err)
	receiver, err := parcel.NewParty(
		"Receiver", "+8801000000002", "dhaka", "gulshan", "Flat 3B", "Leave at desk")
	suite.Require().NoError(err)

	_, err = suite.session.Submit(parcel.Draft{
		Type:     parcel.Document,
		Title:    "Land documents",
		Sender:   sender,
		Receiver: receiver,
	})
	suite.Require().NoError(err)

	staged, err := suite.session.Confirm("sender@example.com")
	suite.Require().NoError(err)
	return staged
}

func (suite *UnitOfWorkIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "ironweb/internal/adapters/out/postgres"
	"ironweb/internal/adapters/out/postgres/itemrepo"
	"ironweb/internal/adapters/out/postgres/orderrepo"
	"ironweb/internal/adapters/out/postgres/sequencerepo"
	"ironweb/internal/core/domain/model/agentday"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/order"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemLineDTO{}, &orderrepo.StepDTO{},
		&sequencerepo.SequenceDTO{}, &sequencerepo.SequenceEntryDTO{},
		&itemrepo.ItemDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_steps, agent_sequences, agent_sequence_orders, items",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.SequenceRepository(), "First instance should provide sequence repository")
	suite.NotNil(uow1.ItemRepository(), "First instance should provide item repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.SequenceRepository(), "Second instance should provide sequence repository")
	suite.NotNil(uow2.ItemRepository(), "Second instance should provide item repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	agentID := kernel.NewUUID()
	testOrder := suite.createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Assign agent to order and build the agent's queue for that day
	err = testOrder.AssignAgent(agentID)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	sequence, err := agentday.NewSequence(agentID, testOrder.WindowDate(), []kernel.UUID{testOrder.ID()})
	suite.Require().NoError(err)
	err = uow.SequenceRepository().Add(ctx, sequence)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify all entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Agent())
	suite.True(agentID.IsEqual(*retrievedOrder.Agent()))

	retrievedSequence, err := newUow.SequenceRepository().GetByAgentAndDate(ctx, agentID, testOrder.WindowDate())
	suite.Require().NoError(err)
	suite.Require().Len(retrievedSequence.OrderIDs(), 1)
	suite.True(testOrder.ID().IsEqual(retrievedSequence.OrderIDs()[0]))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	agentID := kernel.NewUUID()
	testOrder := suite.createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	sequence, err := agentday.NewSequence(agentID, testOrder.WindowDate(), []kernel.UUID{testOrder.ID()})
	suite.Require().NoError(err)
	err = uow.SequenceRepository().Add(ctx, sequence)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.SequenceRepository().GetByAgentAndDate(ctx, agentID, testOrder.WindowDate())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.SequenceRepository().GetByAgentAndDate(ctx, agentID, testOrder.WindowDate())
	suite.Require().Error(err, "Sequence should not exist after rollback")
}

// TestUnitOfWork_AggregateTracking verifies that aggregate tracking mechanism works
// during unit of work operations by ensuring repository operations complete successfully.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := suite.factory.Create()

	agentID := kernel.NewUUID()
	testOrder := suite.createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entity (repositories should track aggregates internally)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Update entity (repositories should track aggregates internally)
	err = testOrder.AssignAgent(agentID)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit transaction - if aggregate tracking is working properly, this should succeed
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify entity was persisted correctly
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Agent())
	suite.True(agentID.IsEqual(*retrievedOrder.Agent()))
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	firstOrder := suite.createTestOrder()
	secondOrder := suite.createTestOrder()

	// Begin transaction only on the first instance
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, firstOrder)
	suite.Require().NoError(err)

	// Second instance has no transaction and must not see uncommitted data
	_, err = uow2.OrderRepository().Get(ctx, firstOrder.ID())
	suite.Require().Error(err, "Uncommitted order should be invisible to other instances")

	// Writing through the second instance goes straight to the database
	err = uow2.OrderRepository().Add(ctx, secondOrder)
	suite.Require().NoError(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Both orders are visible once the first transaction commits
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, firstOrder.ID())
	suite.Require().NoError(err)
	_, err = newUow.OrderRepository().Get(ctx, secondOrder.ID())
	suite.Require().NoError(err)
}

// createTestOrder builds a minimal single-line order booked for a fixed day.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	unitPrice, err := kernel.NewMoneyFromInt(12)
	suite.Require().NoError(err)
	line, err := order.NewItemLine(kernel.NewUUID(), "shirt", unitPrice, 3)
	suite.Require().NoError(err)

	subtotal, err := kernel.NewMoneyFromInt(36)
	suite.Require().NoError(err)
	handlingFee, err := kernel.NewMoneyFromInt(10)
	suite.Require().NoError(err)
	cfg, err := tier.ConfigFor(tier.Normal)
	suite.Require().NoError(err)
	pricing, err := order.NewPricing(subtotal, cfg.DeliveryFee(), handlingFee, false)
	suite.Require().NoError(err)

	date, err := kernel.DayDateFromString("2025-06-10")
	suite.Require().NoError(err)

	windows := cfg.Windows()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		[]order.ItemLine{line},
		tier.Normal,
		windows[0],
		date,
		order.CashOnDelivery,
		pricing,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

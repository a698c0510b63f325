package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"ironweb/internal/adapters/out/postgres/itemrepo"
	"ironweb/internal/core/domain/model/item"
	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ItemRepositoryIntegrationTestSuite provides integration tests for the
// catalog repository using PostgreSQL containers.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items").Error)
	suite.repository = itemrepo.NewGormItemRepository(suite.db)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpsert_NewItem_Inserts() {
	ctx := context.Background()

	entity := suite.createItem("shirt", 12)
	suite.Require().NoError(suite.repository.Upsert(ctx, entity))

	retrieved, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(entity.ID()))
	suite.Equal("shirt", retrieved.Name())
	suite.True(retrieved.UnitPrice().IsEqual(entity.UnitPrice()))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpsert_ExistingItem_RefreshesNameAndPrice() {
	ctx := context.Background()

	entity := suite.createItem("shirt", 12)
	suite.Require().NoError(suite.repository.Upsert(ctx, entity))

	newPrice, err := kernel.NewMoneyFromInt(15)
	suite.Require().NoError(err)
	updated, err := item.NewItem(entity.ID(), "dress shirt", newPrice)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.Equal("dress shirt", retrieved.Name())
	suite.True(retrieved.UnitPrice().IsEqual(newPrice))

	var count int64
	suite.Require().NoError(suite.db.Model(&itemrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetAll_ReturnsCatalogInNameOrder() {
	ctx := context.Background()

	for _, seed := range []struct {
		name  string
		price int64
	}{
		{"trousers", 20},
		{"coat", 45},
		{"shirt", 12},
	} {
		suite.Require().NoError(suite.repository.Upsert(ctx, suite.createItem(seed.name, seed.price)))
	}

	items, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(items, 3)
	suite.Equal("coat", items[0].Name())
	suite.Equal("shirt", items[1].Name())
	suite.Equal("trousers", items[2].Name())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetAll_EmptyCatalog_ReturnsEmptySlice() {
	items, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *ItemRepositoryIntegrationTestSuite) createItem(name string, price int64) *item.Item {
	unitPrice, err := kernel.NewMoneyFromInt(price)
	suite.Require().NoError(err)
	entity, err := item.NewItem(kernel.NewUUID(), name, unitPrice)
	suite.Require().NoError(err)
	return entity
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}

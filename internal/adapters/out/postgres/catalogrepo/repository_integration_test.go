package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/catalogrepo"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PriceCatalogIntegrationTestSuite provides integration tests for
// GormPriceCatalog using PostgreSQL containers, covering price resolution and
// the one-active-entry-per-tuple rule replacement maintains.
type PriceCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *catalogrepo.GormPriceCatalog
}

func (suite *PriceCatalogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.ClothingItemDTO{},
		&catalogrepo.PriceEntryDTO{},
	))
}

func (suite *PriceCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE clothing_items, price_entries").Error)
	suite.catalog = catalogrepo.NewGormPriceCatalog(suite.db)
}

func (suite *PriceCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PriceCatalogIntegrationTestSuite) addPriceEntry(
	itemID kernel.UUID,
	service catalog.ServiceType,
	category catalog.Category,
	price kernel.Money,
) {
	entry, err := catalog.NewPriceEntry(kernel.NewUUID(), itemID, service, category, price)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.AddPriceEntry(context.Background(), entry))
}

func (suite *PriceCatalogIntegrationTestSuite) TestAddItemAndGetItem_RoundTrip() {
	ctx := context.Background()

	item, err := catalog.NewClothingItem(kernel.NewUUID(), "Shirt", "cotton, button-down")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.AddItem(ctx, item))

	restored, err := suite.catalog.GetItem(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(item.ID()))
	suite.Equal("Shirt", restored.Name())
	suite.Equal("cotton, button-down", restored.Description())
}

func (suite *PriceCatalogIntegrationTestSuite) TestGetItem_NotFound() {
	_, err := suite.catalog.GetItem(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PriceCatalogIntegrationTestSuite) TestResolvePrice_ActiveEntry() {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	suite.addPriceEntry(itemID, catalog.ServiceWashing, catalog.CategoryMen, 40)
	suite.addPriceEntry(itemID, catalog.ServiceIroning, catalog.CategoryMen, 25)

	price, err := suite.catalog.ResolvePrice(ctx, itemID, catalog.ServiceWashing, catalog.CategoryMen)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(40), price)

	price, err = suite.catalog.ResolvePrice(ctx, itemID, catalog.ServiceIroning, catalog.CategoryMen)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(25), price)
}

func (suite *PriceCatalogIntegrationTestSuite) TestResolvePrice_MissingEntryIsNotFound() {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	suite.addPriceEntry(itemID, catalog.ServiceWashing, catalog.CategoryMen, 40)

	// Same item and service, different category.
	_, err := suite.catalog.ResolvePrice(ctx, itemID, catalog.ServiceWashing, catalog.CategoryKids)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PriceCatalogIntegrationTestSuite) TestAddPriceEntry_ReplacementDeactivatesPrior() {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	suite.addPriceEntry(itemID, catalog.ServiceWashing, catalog.CategoryMen, 40)
	suite.addPriceEntry(itemID, catalog.ServiceWashing, catalog.CategoryWomen, 45)

	// Replace the MEN price. The old entry must stop resolving.
	suite.addPriceEntry(itemID, catalog.ServiceWashing, catalog.CategoryMen, 55)

	price, err := suite.catalog.ResolvePrice(ctx, itemID, catalog.ServiceWashing, catalog.CategoryMen)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(55), price)

	var activeCount int64
	suite.Require().NoError(suite.db.Model(&catalogrepo.PriceEntryDTO{}).
		Where("clothing_item_id = ? AND service = ? AND category = ? AND active",
			itemID.Bytes(), catalog.ServiceWashing.String(), catalog.CategoryMen.String()).
		Count(&activeCount).Error)
	suite.Equal(int64(1), activeCount, "exactly one active entry per key tuple")

	var totalCount int64
	suite.Require().NoError(suite.db.Model(&catalogrepo.PriceEntryDTO{}).
		Where("clothing_item_id = ?", itemID.Bytes()).
		Count(&totalCount).Error)
	suite.Equal(int64(3), totalCount, "replaced entries are kept, deactivated")

	// Other tuples are untouched by the replacement.
	price, err = suite.catalog.ResolvePrice(ctx, itemID, catalog.ServiceWashing, catalog.CategoryWomen)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(45), price)
}

func TestPriceCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PriceCatalogIntegrationTestSuite))
}

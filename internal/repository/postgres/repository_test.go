package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/domain"
	"storefront/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB returns a migrated in-memory database. The repositories only
// use portable SQL, so sqlite stands in for Postgres here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedProducts(t *testing.T, repo *ProductRepository, products ...domain.Product) {
	t.Helper()
	base := time.Now()
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if products[i].Keywords == nil {
			products[i].Keywords = domain.Keywords{}
		}
	}
	require.NoError(t, repo.CreateBatch(context.Background(), products))
}

func TestProductRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProducts(t, repo,
		domain.Product{ID: "a", Name: "Pan", Category: "Kitchen", Stock: 3, PriceCents: 1200, Rating: domain.DecodeRating([]byte(`{"stars":4.5}`)), Keywords: domain.Keywords{"pan", "steel"}},
		domain.Product{ID: "b", Name: "Lamp", Category: "Home", Stock: 1, PriceCents: 2500, Rating: domain.ListRating(3, 5)},
	)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.ID("a"), all[0].ID)
	assert.Equal(t, domain.Keywords{"pan", "steel"}, all[0].Keywords)
	avg, ok := all[0].Rating.Average()
	assert.True(t, ok)
	assert.Equal(t, 4.5, avg)
	avg, ok = all[1].Rating.Average()
	assert.True(t, ok)
	assert.Equal(t, 4.0, avg)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	p := all[1]
	p.PriceCents = 1999
	p.Keywords = domain.Keywords{"light"}
	require.NoError(t, repo.Update(ctx, &p))

	got, err := repo.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), got.PriceCents)
	assert.Equal(t, domain.Keywords{"light"}, got.Keywords)

	byIDs, err := repo.FindByIDs(ctx, []domain.ID{"a", "zzz"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.FindByID(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrProductNotFound)
}

func TestProductViewRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductViewRepository(db)
	ctx := context.Background()

	uid := domain.ID("7")
	require.NoError(t, repo.Create(ctx, &domain.ProductView{UserID: &uid, ProductID: "a"}))
	require.NoError(t, repo.Create(ctx, &domain.ProductView{ProductID: "a"}))
	require.NoError(t, repo.Create(ctx, &domain.ProductView{UserID: &uid, ProductID: "b"}))

	views, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Nil(t, views[1].UserID)

	last, ok, err := repo.LatestByUser(ctx, "7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.ID("b"), last.ProductID)

	_, ok, err = repo.LatestByUser(ctx, "8")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartRepository_UpsertMergesQuantity(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.CartItem{UserID: 1, ProductID: "a", Quantity: 2}))
	item := &domain.CartItem{UserID: 1, ProductID: "a", Quantity: 3}
	require.NoError(t, repo.Upsert(ctx, item))
	assert.Equal(t, 5, item.Quantity)

	require.NoError(t, repo.Upsert(ctx, &domain.CartItem{UserID: 2, ProductID: "a", Quantity: 1}))

	items, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	require.NoError(t, repo.Delete(ctx, 1, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, 1, "a"), domain.ErrCartItemNotFound)
}

func TestOrdersRepository_Place(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)
	repo := NewOrdersRepository(db)
	ctx := context.Background()

	seedProducts(t, products,
		domain.Product{ID: "a", Name: "Pan", Category: "Kitchen", Stock: 3, PriceCents: 1200},
		domain.Product{ID: "b", Name: "Lamp", Category: "Home", Stock: 1, PriceCents: 2500},
	)
	require.NoError(t, cart.Upsert(ctx, &domain.CartItem{UserID: 1, ProductID: "a", Quantity: 2}))
	require.NoError(t, cart.Upsert(ctx, &domain.CartItem{UserID: 1, ProductID: "b", Quantity: 1}))

	order := &domain.Order{
		ID:       "11111111-1111-1111-1111-111111111111",
		UserID:   1,
		Products: []domain.OrderLine{{ProductID: "a", Quantity: domain.Qty(2), PriceCents: 1200}},
		Status:   domain.OrderStatusPlaced,
	}
	require.NoError(t, repo.Place(ctx, order))

	a, err := products.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Stock)

	items, err := cart.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ID("b"), items[0].ProductID)

	// not enough stock rolls back everything
	failing := &domain.Order{
		ID:     "22222222-2222-2222-2222-222222222222",
		UserID: 1,
		Products: []domain.OrderLine{
			{ProductID: "b", Quantity: domain.Qty(1)},
			{ProductID: "a", Quantity: domain.Qty(5)},
		},
	}
	assert.ErrorIs(t, repo.Place(ctx, failing), domain.ErrOutOfStock)

	b, err := products.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Stock)

	mine, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Products, 1)
	assert.Equal(t, 2, mine[0].Products[0].Quantity.Units())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{FullName: "Ada", Email: "ada@example.com", Password: "hash", Role: domain.RoleCustomer}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	err := repo.Create(ctx, &domain.User{FullName: "Ada 2", Email: "ada@example.com", Password: "hash"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	got, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCategoryRepository_CountByCategory(t *testing.T) {
	db := openTestDB(t)
	seedProducts(t, NewProductRepository(db),
		domain.Product{ID: "a", Name: "Pan", Category: "Kitchen", SubCategory: "Cookware"},
		domain.Product{ID: "b", Name: "Pot", Category: "Kitchen", SubCategory: "Cookware"},
		domain.Product{ID: "c", Name: "Lamp", Category: "Home", SubCategory: "Lighting"},
	)

	rows, err := NewCategoryRepository(db).CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{
		{Category: "Home", SubCategory: "Lighting", Count: 1},
		{Category: "Kitchen", SubCategory: "Cookware", Count: 2},
	}, rows)
}

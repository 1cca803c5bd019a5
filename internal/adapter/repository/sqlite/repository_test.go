package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "carteira.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func newAsset(owner uuid.UUID, name string, custodian string) *domain.Asset {
	return &domain.Asset{
		ID:             uuid.New(),
		OwnerID:        owner,
		Name:           name,
		Class:          domain.AssetClassFixedIncome,
		Subclass:       domain.AssetSubclassCDB,
		Custodian:      custodian,
		InceptionValue: decimal.RequireFromString("1000.50"),
		InceptionDate:  time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAssetRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(openTestDB(t))
	owner := uuid.New()

	asset := newAsset(owner, "CDB Banco Inter", "Inter")
	require.NoError(t, repo.Create(ctx, asset))
	assert.False(t, asset.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, owner, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.Name, got.Name)
	assert.Equal(t, domain.AssetSubclassCDB, got.Subclass)
	assert.True(t, asset.InceptionValue.Equal(got.InceptionValue))
	assert.Equal(t, asset.InceptionDate, got.InceptionDate)

	_, err = repo.GetByID(ctx, uuid.New(), asset.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "assets of other owners are invisible")

	asset.Name = "CDB Inter 2026"
	require.NoError(t, repo.Update(ctx, asset))
	got, err = repo.GetByID(ctx, owner, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "CDB Inter 2026", got.Name)

	require.NoError(t, repo.Delete(ctx, owner, asset.ID))
	assert.ErrorIs(t, repo.Delete(ctx, owner, asset.ID), domain.ErrNotFound)
}

func TestAssetRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(openTestDB(t))
	owner := uuid.New()

	require.NoError(t, repo.Create(ctx, newAsset(owner, "Tesouro IPCA", "XP")))
	require.NoError(t, repo.Create(ctx, newAsset(owner, "CDB Nubank", "Nubank")))
	require.NoError(t, repo.Create(ctx, newAsset(uuid.New(), "CDB Alheio", "XP")))

	all, err := repo.List(ctx, owner, domain.AssetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CDB Nubank", all[0].Name, "ordered by name")

	filtered, err := repo.List(ctx, owner, domain.AssetFilter{Custodian: "xp"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Tesouro IPCA", filtered[0].Name)

	none, err := repo.List(ctx, owner, domain.AssetFilter{Name: "ipca", Custodian: "nubank"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOperationRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	assets := NewAssetRepository(db)
	ops := NewOperationRepository(db)
	owner := uuid.New()

	asset := newAsset(owner, "PETR4", "Clear")
	require.NoError(t, assets.Create(ctx, asset))

	day := func(m time.Month, d int) time.Time { return time.Date(2023, m, d, 0, 0, 0, 0, time.UTC) }
	record := func(kind domain.OperationKind, amount int64, date time.Time) *domain.Operation {
		op := &domain.Operation{
			ID:      uuid.New(),
			OwnerID: owner,
			AssetID: asset.ID,
			Kind:    kind,
			Amount:  decimal.NewFromInt(amount),
			Date:    date,
		}
		require.NoError(t, ops.Create(ctx, op))
		return op
	}

	late := record(domain.OperationKindRevaluation, 1500, day(time.March, 31))
	first := record(domain.OperationKindRevaluation, 1200, day(time.February, 10))
	second := record(domain.OperationKindBuy, 100, day(time.February, 10))

	byAsset, err := ops.ListByAsset(ctx, owner, asset.ID)
	require.NoError(t, err)
	require.Len(t, byAsset, 3)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, late.ID}, []uuid.UUID{byAsset[0].ID, byAsset[1].ID, byAsset[2].ID})

	newest, err := ops.List(ctx, owner, domain.OperationFilter{})
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, late.ID, newest[0].ID)

	buys, err := ops.List(ctx, owner, domain.OperationFilter{AssetID: &asset.ID, Kind: domain.OperationKindBuy})
	require.NoError(t, err)
	require.Len(t, buys, 1)
	assert.Equal(t, second.ID, buys[0].ID)

	second.Amount = decimal.NewFromInt(250)
	require.NoError(t, ops.Update(ctx, second))
	got, err := ops.GetByID(ctx, owner, second.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(got.Amount))

	require.NoError(t, assets.Delete(ctx, owner, asset.ID))
	_, err = ops.GetByID(ctx, owner, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "operations cascade with their asset")
}

func TestRepositories_KeepGivenCreationTime(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	assets := NewAssetRepository(db)
	ops := NewOperationRepository(db)
	owner := uuid.New()
	stamp := time.Date(2023, time.May, 2, 14, 30, 5, 123456000, time.FixedZone("BRT", -3*60*60))

	asset := newAsset(owner, "Tesouro Selic", "XP")
	asset.CreatedAt = stamp
	require.NoError(t, assets.Create(ctx, asset))
	assert.True(t, stamp.Equal(asset.CreatedAt), "the clock of the caller is kept")

	gotAsset, err := assets.GetByID(ctx, owner, asset.ID)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(gotAsset.CreatedAt))

	op := &domain.Operation{
		ID:        uuid.New(),
		OwnerID:   owner,
		AssetID:   asset.ID,
		Kind:      domain.OperationKindBuy,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt: stamp,
	}
	require.NoError(t, ops.Create(ctx, op))
	gotOp, err := ops.GetByID(ctx, owner, op.ID)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(gotOp.CreatedAt))

	unset := newAsset(owner, "CDB Nubank", "Nubank")
	before := time.Now()
	require.NoError(t, assets.Create(ctx, unset))
	assert.False(t, unset.CreatedAt.Before(before.Add(-time.Second)), "an unset creation time is stamped on insert")
}

func TestMonthlyValueRepository_ReplaceAndInvalidate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := uuid.New()
	asset := newAsset(owner, "Bitcoin", "Binance")
	require.NoError(t, NewAssetRepository(db).Create(ctx, asset))

	cache := NewMonthlyValueRepository(db)
	key := domain.SeriesKey{OwnerID: owner, AssetID: asset.ID}

	_, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	jan := domain.NewMonth(2023, time.January)
	series := domain.MonthlySeries{Points: []domain.MonthlyPoint{
		{Month: jan, Value: decimal.NewFromInt(1000), Buys: decimal.Zero, Sells: decimal.Zero},
		{Month: jan.AddMonths(1), Value: decimal.RequireFromString("1100.25"), Buys: decimal.NewFromInt(50), Sells: decimal.Zero},
	}}
	require.NoError(t, cache.Replace(ctx, key, series))

	series.Points = series.Points[:1]
	require.NoError(t, cache.Replace(ctx, key, series))

	got, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, got.Len(), "replace drops months that are no longer part of the series")
	assert.Equal(t, jan, got.Points[0].Month)

	require.NoError(t, cache.Invalidate(ctx, key))
	_, found, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/domain"
)

func createTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "albion_stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Initialize(context.Background()))
	return db
}

func TestSoloHunt_InsertThenList(t *testing.T) {
	ctx := context.Background()
	repo := NewSoloHuntRepository(createTestDB(t))

	hunt := &domain.SoloHunt{
		Date:        domain.NewDate(2024, time.January, 1),
		Character:   "Alice",
		HuntType:    domain.HuntTypeCorrupted,
		ItemProfit:  decimal.RequireFromString("125000.5"),
		Description: "mists",
	}
	require.NoError(t, repo.CreateSoloHunt(ctx, hunt))
	assert.Positive(t, hunt.ID)
	assert.False(t, hunt.CreatedAt.IsZero())

	hunts, err := repo.ListSoloHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 1)

	got := hunts[0]
	assert.Equal(t, hunt.ID, got.ID)
	assert.Equal(t, "2024-01-01", got.Date.String())
	assert.Equal(t, "Alice", got.Character)
	assert.Equal(t, domain.HuntTypeCorrupted, got.HuntType)
	assert.True(t, got.ItemProfit.Equal(hunt.ItemProfit), "got %s", got.ItemProfit)
	assert.Equal(t, "mists", got.Description)
}

func TestSoloHunt_AliceBobScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewSoloHuntRepository(createTestDB(t))

	alice := &domain.SoloHunt{Date: domain.NewDate(2024, time.January, 1), Character: "Alice", HuntType: domain.HuntTypeSolo, ItemProfit: decimal.NewFromInt(1000)}
	bob := &domain.SoloHunt{Date: domain.NewDate(2024, time.January, 2), Character: "Bob", HuntType: domain.HuntTypeHCE, ItemProfit: decimal.NewFromInt(2000)}
	require.NoError(t, repo.CreateSoloHunt(ctx, alice))
	require.NoError(t, repo.CreateSoloHunt(ctx, bob))

	hunts, err := repo.ListSoloHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 2)
	assert.Equal(t, "Bob", hunts[0].Character)
	assert.Equal(t, "Alice", hunts[1].Character)

	require.NoError(t, repo.DeleteSoloHunt(ctx, alice.ID))

	hunts, err = repo.ListSoloHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 1)
	assert.Equal(t, bob.ID, hunts[0].ID)
}

func TestSoloHunt_SameDayOrderedByIDDescending(t *testing.T) {
	ctx := context.Background()
	repo := NewSoloHuntRepository(createTestDB(t))
	day := domain.NewDate(2024, time.June, 1)

	first := &domain.SoloHunt{Date: day, Character: "A", HuntType: domain.HuntTypeSolo}
	second := &domain.SoloHunt{Date: day, Character: "B", HuntType: domain.HuntTypeSolo}
	require.NoError(t, repo.CreateSoloHunt(ctx, first))
	require.NoError(t, repo.CreateSoloHunt(ctx, second))

	hunts, err := repo.ListSoloHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 2)
	assert.Equal(t, second.ID, hunts[0].ID)
	assert.Equal(t, first.ID, hunts[1].ID)
}

func TestDelete_MissingIDSucceeds(t *testing.T) {
	ctx := context.Background()
	db := createTestDB(t)

	assert.NoError(t, NewSoloHuntRepository(db).DeleteSoloHunt(ctx, 999))
	assert.NoError(t, NewGroupHuntRepository(db).DeleteGroupHunt(ctx, 999))
	assert.NoError(t, NewDeathRepository(db).DeleteDeath(ctx, 999))
	assert.NoError(t, NewBuildRepository(db).DeleteBuild(ctx, 999))

	// Repeating the delete is just as quiet.
	assert.NoError(t, NewSoloHuntRepository(db).DeleteSoloHunt(ctx, 999))
}

func TestGroupHunt_InsertThenList(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupHuntRepository(createTestDB(t))

	hunt := &domain.GroupHunt{
		Date:       domain.NewDate(2024, time.February, 10),
		Characters: "A, B, C",
		TotalValue: decimal.NewFromInt(300),
	}
	require.NoError(t, repo.CreateGroupHunt(ctx, hunt))

	hunts, err := repo.ListGroupHunts(ctx)
	require.NoError(t, err)
	require.Len(t, hunts, 1)

	got := hunts[0]
	assert.Equal(t, "A, B, C", got.Characters)
	assert.Equal(t, 3, got.ParticipantCount())
	perPerson, ok := got.PerPersonValue()
	require.True(t, ok)
	assert.Equal(t, "100", perPerson.String())
	assert.Empty(t, got.Notes)

	require.NoError(t, repo.DeleteGroupHunt(ctx, hunt.ID))
	hunts, err = repo.ListGroupHunts(ctx)
	require.NoError(t, err)
	assert.Empty(t, hunts)
	assert.NotNil(t, hunts)
}

func TestDeath_InsertDeleteList(t *testing.T) {
	ctx := context.Background()
	repo := NewDeathRepository(createTestDB(t))

	older := &domain.Death{Date: domain.NewDate(2023, time.December, 31), Character: "Alice", ValueLost: decimal.NewFromInt(50000)}
	newer := &domain.Death{Date: domain.NewDate(2024, time.March, 3), Character: "Alice", ValueLost: decimal.NewFromInt(70000), Description: "ganked"}
	require.NoError(t, repo.CreateDeath(ctx, older))
	require.NoError(t, repo.CreateDeath(ctx, newer))

	deaths, err := repo.ListDeaths(ctx)
	require.NoError(t, err)
	require.Len(t, deaths, 2)
	assert.Equal(t, newer.ID, deaths[0].ID)
	assert.Equal(t, "ganked", deaths[0].Description)
	assert.True(t, deaths[1].ValueLost.Equal(decimal.NewFromInt(50000)))

	require.NoError(t, repo.DeleteDeath(ctx, newer.ID))
	deaths, err = repo.ListDeaths(ctx)
	require.NoError(t, err)
	require.Len(t, deaths, 1)
	assert.Equal(t, older.ID, deaths[0].ID)
}

func TestBuild_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewBuildRepository(createTestDB(t))

	build := &domain.Build{
		Name:          "Claymore DPS",
		ContentType:   domain.ContentZvZ,
		PrimaryWeapon: "Claymore",
		Head:          "Soldier Helmet",
		Character:     "Alice",
	}
	require.NoError(t, repo.CreateBuild(ctx, build))
	assert.Positive(t, build.ID)

	got, err := repo.GetBuild(ctx, build.ID)
	require.NoError(t, err)
	assert.Equal(t, "Claymore DPS", got.Name)
	assert.Equal(t, "Soldier Helmet", got.Head)
	assert.Empty(t, got.Offhand)
	assert.Equal(t, "Alice", got.Character)

	update := *got
	update.Offhand = "Mistcaller"
	update.Notes = "swap for mists"
	require.NoError(t, repo.UpdateBuild(ctx, build.ID, &update))

	got, err = repo.GetBuild(ctx, build.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mistcaller", got.Offhand)
	assert.Equal(t, "swap for mists", got.Notes)
}

func TestBuild_UpdateMissing(t *testing.T) {
	repo := NewBuildRepository(createTestDB(t))

	err := repo.UpdateBuild(context.Background(), 42, &domain.Build{Name: "x", ContentType: domain.ContentZvZ, PrimaryWeapon: "y"})
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = repo.GetBuild(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestBuild_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBuildRepository(createTestDB(t))

	for _, b := range []domain.Build{
		{Name: "Zeta", ContentType: domain.ContentZvZ, PrimaryWeapon: "w"},
		{Name: "Beta", ContentType: domain.ContentPvESolo, PrimaryWeapon: "w"},
		{Name: "Alpha", ContentType: domain.ContentZvZ, PrimaryWeapon: "w"},
	} {
		b := b
		require.NoError(t, repo.CreateBuild(ctx, &b))
	}

	builds, err := repo.ListBuilds(ctx)
	require.NoError(t, err)
	require.Len(t, builds, 3)
	assert.Equal(t, "Beta", builds[0].Name)
	assert.Equal(t, "Alpha", builds[1].Name)
	assert.Equal(t, "Zeta", builds[2].Name)
}

func TestList_StoreFailureReturnsEmptySlice(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	hunts, err := NewSoloHuntRepository(db).ListSoloHunts(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NotNil(t, hunts)
	assert.Empty(t, hunts)

	builds, err := NewBuildRepository(db).ListBuilds(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NotNil(t, builds)
}

func TestParseTimestamp(t *testing.T) {
	ts := parseTimestamp("2024-01-02 03:04:05")
	assert.Equal(t, time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC), ts)

	now := time.Now()
	assert.True(t, parseTimestamp(now).Equal(now))
	assert.True(t, parseTimestamp(nil).IsZero())
	assert.True(t, parseTimestamp("garbage").IsZero())
}

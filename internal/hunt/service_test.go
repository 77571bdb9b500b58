package hunt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// mockSoloRepository implements repository.SoloHunt in memory
type mockSoloRepository struct {
	hunts  []domain.SoloHunt
	nextID int64
	err    error
}

func (m *mockSoloRepository) CreateSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	hunt.ID = m.nextID
	m.hunts = append([]domain.SoloHunt{*hunt}, m.hunts...)
	return nil
}

func (m *mockSoloRepository) ListSoloHunts(ctx context.Context) ([]domain.SoloHunt, error) {
	if m.err != nil {
		return []domain.SoloHunt{}, m.err
	}
	return append([]domain.SoloHunt{}, m.hunts...), nil
}

func (m *mockSoloRepository) DeleteSoloHunt(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	kept := m.hunts[:0]
	for _, h := range m.hunts {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	m.hunts = kept
	return nil
}

// mockGroupRepository implements repository.GroupHunt in memory
type mockGroupRepository struct {
	hunts  []domain.GroupHunt
	nextID int64
	err    error
}

func (m *mockGroupRepository) CreateGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	hunt.ID = m.nextID
	m.hunts = append([]domain.GroupHunt{*hunt}, m.hunts...)
	return nil
}

func (m *mockGroupRepository) ListGroupHunts(ctx context.Context) ([]domain.GroupHunt, error) {
	if m.err != nil {
		return []domain.GroupHunt{}, m.err
	}
	return append([]domain.GroupHunt{}, m.hunts...), nil
}

func (m *mockGroupRepository) DeleteGroupHunt(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	kept := m.hunts[:0]
	for _, h := range m.hunts {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	m.hunts = kept
	return nil
}

var errDiskFull = errors.New("disk full")

func TestRecordSoloHunt(t *testing.T) {
	solo := &mockSoloRepository{}
	svc := NewService(solo, &mockGroupRepository{})
	ctx := context.Background()

	hunt := &domain.SoloHunt{
		Date:       domain.NewDate(2024, time.January, 1),
		Character:  "Alice",
		HuntType:   domain.HuntTypeSolo,
		ItemProfit: decimal.NewFromInt(1000),
	}
	require.NoError(t, svc.RecordSoloHunt(ctx, hunt))
	assert.Equal(t, int64(1), hunt.ID)
	assert.Len(t, solo.hunts, 1)
}

func TestRecordSoloHunt_Invalid(t *testing.T) {
	solo := &mockSoloRepository{}
	svc := NewService(solo, &mockGroupRepository{})

	err := svc.RecordSoloHunt(context.Background(), &domain.SoloHunt{HuntType: domain.HuntTypeSolo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, solo.hunts)
}

func TestRecordSoloHunt_StoreFailure(t *testing.T) {
	storeErr := errors.Join(domain.ErrStoreFailure, errDiskFull)
	svc := NewService(&mockSoloRepository{err: storeErr}, &mockGroupRepository{})

	err := svc.RecordSoloHunt(context.Background(), &domain.SoloHunt{
		Date: domain.NewDate(2024, time.January, 1), Character: "Alice", HuntType: domain.HuntTypeHCE,
	})
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.Contains(t, err.Error(), ErrMsgRecordSoloHuntFailed)
}

func TestSoloHunts_AliceBobScenario(t *testing.T) {
	svc := NewService(&mockSoloRepository{}, &mockGroupRepository{})
	ctx := context.Background()

	alice := &domain.SoloHunt{Date: domain.NewDate(2024, time.January, 1), Character: "Alice", HuntType: domain.HuntTypeSolo, ItemProfit: decimal.NewFromInt(1000)}
	bob := &domain.SoloHunt{Date: domain.NewDate(2024, time.January, 2), Character: "Bob", HuntType: domain.HuntTypeCorrupted, ItemProfit: decimal.NewFromInt(2000)}
	require.NoError(t, svc.RecordSoloHunt(ctx, alice))
	require.NoError(t, svc.RecordSoloHunt(ctx, bob))

	hunts, err := svc.ListSoloHunts(ctx, domain.SoloHuntFilter{})
	require.NoError(t, err)
	assert.Len(t, hunts, 2)

	onlyBob, err := svc.ListSoloHunts(ctx, domain.SoloHuntFilter{Character: "Bob"})
	require.NoError(t, err)
	require.Len(t, onlyBob, 1)
	assert.Equal(t, bob.ID, onlyBob[0].ID)

	require.NoError(t, svc.DeleteSoloHunt(ctx, alice.ID))
	hunts, err = svc.ListSoloHunts(ctx, domain.SoloHuntFilter{})
	require.NoError(t, err)
	require.Len(t, hunts, 1)
	assert.Equal(t, "Bob", hunts[0].Character)

	// Deleting again is still a success.
	assert.NoError(t, svc.DeleteSoloHunt(ctx, alice.ID))
}

func TestListSoloHunts_FailureReturnsEmptySlice(t *testing.T) {
	svc := NewService(&mockSoloRepository{err: errDiskFull}, &mockGroupRepository{})

	hunts, err := svc.ListSoloHunts(context.Background(), domain.SoloHuntFilter{})
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotNil(t, hunts)
	assert.Empty(t, hunts)
}

func TestRecordGroupHunt_NormalizesCharacters(t *testing.T) {
	group := &mockGroupRepository{}
	svc := NewService(&mockSoloRepository{}, group)

	hunt := &domain.GroupHunt{
		Date:       domain.NewDate(2024, time.March, 1),
		Characters: "A,B , ,C",
		TotalValue: decimal.NewFromInt(300),
	}
	require.NoError(t, svc.RecordGroupHunt(context.Background(), hunt))
	require.Len(t, group.hunts, 1)
	assert.Equal(t, "A, B, C", group.hunts[0].Characters)

	perPerson, ok := group.hunts[0].PerPersonValue()
	require.True(t, ok)
	assert.True(t, perPerson.Equal(decimal.NewFromInt(100)))
}

func TestRecordGroupHunt_NoParticipants(t *testing.T) {
	group := &mockGroupRepository{}
	svc := NewService(&mockSoloRepository{}, group)

	err := svc.RecordGroupHunt(context.Background(), &domain.GroupHunt{
		Date:       domain.NewDate(2024, time.March, 1),
		Characters: " , ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, group.hunts)
}

func TestListGroupHunts_Filters(t *testing.T) {
	svc := NewService(&mockSoloRepository{}, &mockGroupRepository{})
	ctx := context.Background()
	day := domain.NewDate(2024, time.April, 4)

	require.NoError(t, svc.RecordGroupHunt(ctx, &domain.GroupHunt{Date: day, Characters: "Alice, Bob"}))
	require.NoError(t, svc.RecordGroupHunt(ctx, &domain.GroupHunt{Date: day, Characters: "Alice, Bob, Carol, Dave"}))
	require.NoError(t, svc.RecordGroupHunt(ctx, &domain.GroupHunt{Date: domain.NewDate(2024, time.April, 5), Characters: "Carol"}))

	big, err := svc.ListGroupHunts(ctx, domain.GroupHuntFilter{MinGroupSize: 3})
	require.NoError(t, err)
	assert.Len(t, big, 1)

	onDay, err := svc.ListGroupHunts(ctx, domain.GroupHuntFilter{Date: day})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	withCarol, err := svc.ListGroupHunts(ctx, domain.GroupHuntFilter{Character: "Carol"})
	require.NoError(t, err)
	assert.Len(t, withCarol, 2)
}

func TestDeleteGroupHunt_StoreFailure(t *testing.T) {
	svc := NewService(&mockSoloRepository{}, &mockGroupRepository{err: errDiskFull})

	err := svc.DeleteGroupHunt(context.Background(), 3)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), ErrMsgDeleteGroupHuntFailed)
}

package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
)

type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) AuditBuilds(ctx context.Context) ([]build.Audit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]build.Audit), args.Error(1)
}

func TestBuildAuditJob(t *testing.T) {
	auditor := new(MockAuditor)
	auditor.On("AuditBuilds", mock.Anything).Return([]build.Audit{
		{
			Build: domain.Build{ID: 3, Name: "Old Tank"},
			Mismatches: []equipment.SlotMismatch{
				{Slot: domain.SlotPrimaryWeapon, Category: domain.CategoryWeapons, Name: "Claymoore"},
			},
		},
	}, nil).Once()
	auditor.On("AuditBuilds", mock.Anything).Return([]build.Audit{}, nil).Once()

	job := NewBuildAuditJob(auditor)
	assert.Equal(t, JobNameBuildAudit, job.Name())

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.OrphanedBuilds))

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.OrphanedBuilds))
	auditor.AssertExpectations(t)
}

func TestBuildAuditJob_CatalogUnavailable(t *testing.T) {
	metrics.OrphanedBuilds.Set(2)
	auditor := new(MockAuditor)
	auditor.On("AuditBuilds", mock.Anything).Return(nil, domain.ErrResourceMissing)

	err := NewBuildAuditJob(auditor).Process(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResourceMissing))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.OrphanedBuilds))
}

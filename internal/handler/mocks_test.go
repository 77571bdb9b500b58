package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// MockHuntService mocks the hunt.Service interface
type MockHuntService struct {
	mock.Mock
}

func (m *MockHuntService) RecordSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error {
	args := m.Called(ctx, hunt)
	return args.Error(0)
}

func (m *MockHuntService) ListSoloHunts(ctx context.Context, filter domain.SoloHuntFilter) ([]domain.SoloHunt, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.SoloHunt), args.Error(1)
}

func (m *MockHuntService) DeleteSoloHunt(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHuntService) RecordGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error {
	args := m.Called(ctx, hunt)
	return args.Error(0)
}

func (m *MockHuntService) ListGroupHunts(ctx context.Context, filter domain.GroupHuntFilter) ([]domain.GroupHunt, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.GroupHunt), args.Error(1)
}

func (m *MockHuntService) DeleteGroupHunt(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDeathService mocks the death.Service interface
type MockDeathService struct {
	mock.Mock
}

func (m *MockDeathService) RecordDeath(ctx context.Context, death *domain.Death) error {
	args := m.Called(ctx, death)
	return args.Error(0)
}

func (m *MockDeathService) ListDeaths(ctx context.Context, filter domain.DeathFilter) ([]domain.Death, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Death), args.Error(1)
}

func (m *MockDeathService) DeleteDeath(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBuildService mocks the build.Service interface
type MockBuildService struct {
	mock.Mock
}

func (m *MockBuildService) CreateBuild(ctx context.Context, b *domain.Build) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBuildService) GetBuild(ctx context.Context, id int64) (*domain.Build, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Build), args.Error(1)
}

func (m *MockBuildService) ListBuilds(ctx context.Context, filter domain.BuildFilter) ([]domain.Build, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Build), args.Error(1)
}

func (m *MockBuildService) ListBuildViews(ctx context.Context, filter domain.BuildFilter) ([]build.View, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]build.View), args.Error(1)
}

func (m *MockBuildService) UpdateBuild(ctx context.Context, id int64, b *domain.Build) error {
	args := m.Called(ctx, id, b)
	return args.Error(0)
}

func (m *MockBuildService) DeleteBuild(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBuildService) AuditBuilds(ctx context.Context) ([]build.Audit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]build.Audit), args.Error(1)
}

// MockStatsService mocks the stats.Service interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetSummary(ctx context.Context, period string) (*domain.StatsSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSummary), args.Error(1)
}

func (m *MockStatsService) Characters(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

// serve routes a single request through a chi router so path params resolve
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

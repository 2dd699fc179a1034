package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/pkg/rawjson"
)

type MockSourceLoader struct {
	mock.Mock
}

func (m *MockSourceLoader) Load(ctx context.Context, locator string) (rawjson.Value, error) {
	args := m.Called(ctx, locator)
	return args.Get(0).(rawjson.Value), args.Error(1)
}

func (m *MockSourceLoader) Exists(ctx context.Context, locator string) (bool, error) {
	args := m.Called(ctx, locator)
	return args.Bool(0), args.Error(1)
}

type MockSearchAnalyticsRepository struct {
	mock.Mock
}

func (m *MockSearchAnalyticsRepository) RecordZeroResult(ctx context.Context, event *entities.SearchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSearchAnalyticsRepository) GetZeroResultQueries(ctx context.Context, limit int) ([]entities.ZeroResultQuery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ZeroResultQuery), args.Error(1)
}

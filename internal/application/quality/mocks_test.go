package quality

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/domain/shared"
)

// MockQualityInspectionRepository is a mock implementation of QualityInspectionRepository
type MockQualityInspectionRepository struct {
	mock.Mock
}

func (m *MockQualityInspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.QualityInspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.QualityInspection), args.Error(1)
}

func (m *MockQualityInspectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.QualityInspection, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quality.QualityInspection), args.Error(1)
}

func (m *MockQualityInspectionRepository) Save(ctx context.Context, qi *quality.QualityInspection) error {
	args := m.Called(ctx, qi)
	return args.Error(0)
}

func (m *MockQualityInspectionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockNonconformanceRepository is a mock implementation of NonconformanceRepository
type MockNonconformanceRepository struct {
	mock.Mock
}

func (m *MockNonconformanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.Nonconformance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.Nonconformance), args.Error(1)
}

func (m *MockNonconformanceRepository) FindByStatus(ctx context.Context, status quality.NonconformanceStatus, filter shared.Filter) ([]quality.Nonconformance, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]quality.Nonconformance), args.Error(1)
}

func (m *MockNonconformanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.Nonconformance, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quality.Nonconformance), args.Error(1)
}

func (m *MockNonconformanceRepository) Save(ctx context.Context, nc *quality.Nonconformance) error {
	args := m.Called(ctx, nc)
	return args.Error(0)
}

func (m *MockNonconformanceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

package activities

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// MockActivityRepository is a mock implementation of Repository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) ListActivities(ctx context.Context) ([]types.TourismActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TourismActivity), args.Error(1)
}

func (m *MockActivityRepository) GetActivity(ctx context.Context, id string) (*types.TourismActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TourismActivity), args.Error(1)
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity types.TourismActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func setupActivityServiceTest() (*ServiceImpl, *MockActivityRepository) {
	mockRepo := new(MockActivityRepository)
	service := NewService(mockRepo, slog.New(slog.DiscardHandler))
	return service, mockRepo
}

func TestServiceImpl_GetCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes records", func(t *testing.T) {
		service, mockRepo := setupActivityServiceTest()
		records := []types.TourismActivity{
			{ID: "a1", Name: "City Museum", Type: types.ActivityMuseum, Rating: 4.5, DurationMinutes: 120},
			{ID: "a1", Name: "Duplicate", Type: types.ActivityMuseum, Rating: 2.0, DurationMinutes: 60},
			{ID: "a2", Name: "Harbor Cruise", Type: types.ActivityExcursion, Rating: 9.0, DurationMinutes: 180},
		}
		mockRepo.On("ListActivities", mock.Anything).Return(records, nil).Once()

		catalog, err := service.GetCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())

		a2, ok := catalog.Get("a2")
		require.True(t, ok)
		assert.Equal(t, 5.0, a2.Rating, "rating clamped during normalization")
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo := setupActivityServiceTest()
		repoErr := errors.New("db down")
		mockRepo.On("ListActivities", mock.Anything).Return(nil, repoErr).Once()

		_, err := service.GetCatalog(ctx)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_IngestActivities(t *testing.T) {
	ctx := context.Background()
	valid := types.TourismActivity{
		ID: "a1", Name: "City Museum", Type: types.ActivityMuseum,
		DurationMinutes: 120, Cost: 15, Rating: 4.5,
	}

	t.Run("stores every valid record", func(t *testing.T) {
		service, mockRepo := setupActivityServiceTest()
		second := valid
		second.ID = "a2"
		mockRepo.On("SaveActivity", mock.Anything, valid).Return(nil).Once()
		mockRepo.On("SaveActivity", mock.Anything, second).Return(nil).Once()

		stored, err := service.IngestActivities(ctx, []types.TourismActivity{valid, second})
		require.NoError(t, err)
		assert.Equal(t, 2, stored)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects the batch before storing anything", func(t *testing.T) {
		service, mockRepo := setupActivityServiceTest()
		bad := valid
		bad.DurationMinutes = 0

		_, err := service.IngestActivities(ctx, []types.TourismActivity{valid, bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration must be positive")
		mockRepo.AssertNotCalled(t, "SaveActivity", mock.Anything, mock.Anything)
	})

	t.Run("unknown activity type", func(t *testing.T) {
		service, _ := setupActivityServiceTest()
		bad := valid
		bad.Type = "spa"

		_, err := service.IngestActivities(ctx, []types.TourismActivity{bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown activity type")
	})

	t.Run("save error reports partial count", func(t *testing.T) {
		service, mockRepo := setupActivityServiceTest()
		second := valid
		second.ID = "a2"
		saveErr := errors.New("disk full")
		mockRepo.On("SaveActivity", mock.Anything, valid).Return(nil).Once()
		mockRepo.On("SaveActivity", mock.Anything, second).Return(saveErr).Once()

		stored, err := service.IngestActivities(ctx, []types.TourismActivity{valid, second})
		assert.ErrorIs(t, err, saveErr)
		assert.Equal(t, 1, stored)
		mockRepo.AssertExpectations(t)
	})
}

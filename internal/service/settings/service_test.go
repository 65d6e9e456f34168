package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCompanyRepo struct {
	getScheduleSettings func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error)
}

func (f *fakeCompanyRepo) GetScheduleSettings(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
	return f.getScheduleSettings(ctx, companyID)
}

func TestGet_StoredSettings(t *testing.T) {
	repo := &fakeCompanyRepo{
		getScheduleSettings: func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
			return &domain.ScheduleSettings{
				ID:                     1,
				CompanyID:              companyID,
				SlotDurationMinutes:    45,
				MinBookingAdvanceHours: 3,
			}, nil
		},
	}

	resp, err := NewService(repo, nopLogger{}).Get(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.CompanyID)
	assert.Equal(t, 45, resp.SlotDuration)
	assert.Equal(t, 3, resp.MinBookingAdvanceHours)
	assert.False(t, resp.IsDefault)
}

func TestGet_DefaultsWhenNoRow(t *testing.T) {
	repo := &fakeCompanyRepo{
		getScheduleSettings: func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
			return nil, companyRepo.ErrSettingsNotFound
		},
	}

	resp, err := NewService(repo, nopLogger{}).Get(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDuration)
	assert.Equal(t, domain.DefaultMinBookingAdvanceHours, resp.MinBookingAdvanceHours)
	assert.True(t, resp.IsDefault)
}

func TestGet_InvalidCompanyID(t *testing.T) {
	repo := &fakeCompanyRepo{
		getScheduleSettings: func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
			t.Fatal("repository must not be touched on invalid input")
			return nil, nil
		},
	}

	_, err := NewService(repo, nopLogger{}).Get(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_RepositoryError(t *testing.T) {
	repo := &fakeCompanyRepo{
		getScheduleSettings: func(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := NewService(repo, nopLogger{}).Get(context.Background(), 10)

	assert.ErrorIs(t, err, ErrInternal)
}

package jobs

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"cashbook-backend/internal/config"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBusinessService struct {
	mock.Mock
	service.BusinessService
}

func (m *MockBusinessService) RotateExpiredJoinCodes(ctx context.Context, maxAge time.Duration) (int, error) {
	args := m.Called(ctx, maxAge)
	return args.Int(0), args.Error(1)
}

func newRunner(svc service.BusinessService, maxAgeHours int) *JobRunner {
	cfg := &config.Config{JoinCode: config.JoinCodeConfig{MaxAgeHours: maxAgeHours}}
	return NewJobRunner(&Services{Business: svc}, cfg)
}

func TestRotateExpiredJoinCodes(t *testing.T) {
	svc := new(MockBusinessService)
	svc.On("RotateExpiredJoinCodes", mock.Anything, 168*time.Hour).Return(3, nil).Once()

	newRunner(svc, 168).RotateExpiredJoinCodes()

	svc.AssertExpectations(t)
}

func TestRotateExpiredJoinCodes_Disabled(t *testing.T) {
	svc := new(MockBusinessService)

	newRunner(svc, 0).RotateExpiredJoinCodes()

	svc.AssertNotCalled(t, "RotateExpiredJoinCodes", mock.Anything, mock.Anything)
}

func TestRotateExpiredJoinCodes_ErrorIsContained(t *testing.T) {
	svc := new(MockBusinessService)
	svc.On("RotateExpiredJoinCodes", mock.Anything, 24*time.Hour).Return(1, errors.New("db down")).Once()

	newRunner(svc, 24).RunAll()

	svc.AssertExpectations(t)
}

func TestRunWithRecovery_ContainsPanics(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter("info", "text", &buf)
	t.Cleanup(func() { logger.Initialize("info", "text") })

	jr := newRunner(nil, 1)
	jr.runWithRecovery("Panicky", func(ctx context.Context) {
		panic("boom")
	})

	assert.Contains(t, buf.String(), "Job panicked")
	assert.Contains(t, buf.String(), "service=JobRunner")
	assert.Contains(t, buf.String(), "job=Panicky")
}

func TestRunWithRecovery_ContextHasDeadline(t *testing.T) {
	jr := newRunner(nil, 1)
	jr.runWithRecovery("Deadline", func(ctx context.Context) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("job context has no deadline")
		}
	})
}

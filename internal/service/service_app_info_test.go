package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error { return f.err }

func TestNewAppInfoService_MissingVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, &fakePinger{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.3-STABLE"}, &fakePinger{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.3-STABLE", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_GetFeatures(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.3-STABLE"}, &fakePinger{}, logger.Nop())
	require.NoError(t, err)

	got := svc.GetFeatures(context.Background())
	assert.Equal(t, []string{"role-based-access", "multi-currency", "enhanced-error-handling"}, got)

	// mutating the returned slice must not leak into the service
	got[0] = "mutated"
	assert.Equal(t, "role-based-access", svc.GetFeatures(context.Background())[0])
}

func TestAppInfoService_CheckDatabase(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    string
	}{
		{"healthy database", nil, DatabaseHealthy},
		{"failing database", errors.New("connection refused"), "error: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: "3.3-STABLE"}, &fakePinger{err: tt.pingErr}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.CheckDatabase(context.Background()))
		})
	}
}

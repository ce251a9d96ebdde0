package route_test

import (
	"testing"

	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  route.Status
		wantErr bool
	}{
		{name: "planned", status: route.StatusPlanned},
		{name: "in progress", status: route.StatusInProgress},
		{name: "completed", status: route.StatusCompleted},
		{name: "unknown", status: route.StatusUnknown, wantErr: true},
		{name: "out of range", status: route.Status(42), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, route.StatusPlanned.CanTransitionTo(route.StatusInProgress))
	assert.True(t, route.StatusPlanned.CanTransitionTo(route.StatusCompleted))
	assert.True(t, route.StatusInProgress.CanTransitionTo(route.StatusCompleted))
	assert.True(t, route.StatusInProgress.CanTransitionTo(route.StatusInProgress))

	assert.False(t, route.StatusInProgress.CanTransitionTo(route.StatusPlanned))
	assert.False(t, route.StatusCompleted.CanTransitionTo(route.StatusInProgress))
	assert.False(t, route.StatusCompleted.CanTransitionTo(route.StatusPlanned))
}

func TestStatus_WireRoundTrip(t *testing.T) {
	for _, status := range []route.Status{
		route.StatusPlanned, route.StatusInProgress, route.StatusCompleted,
	} {
		parsed, err := route.StatusFromString(status.WireString())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := route.StatusFromString("DRAFT")
	require.Error(t, err)
}

func TestStopStatus(t *testing.T) {
	require.NoError(t, route.StopStatusPending.Validate())
	require.NoError(t, route.StopStatusDelivered.Validate())
	require.Error(t, route.StopStatusUnknown.Validate())

	assert.Equal(t, "PENDING", route.StopStatusPending.WireString())
	assert.Equal(t, "DELIVERED", route.StopStatusDelivered.WireString())
}

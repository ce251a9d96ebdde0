package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateRouteCommand(t *testing.T) {
	routeID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	name := "West end"
	notes := "Avoid Main St"

	cmd, err := commands.NewUpdateRouteCommand(routeID, &name, &driverID, &notes)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.RouteID().IsEqual(routeID))
	assert.Equal(t, &name, cmd.Name())
	assert.Equal(t, &driverID, cmd.DriverID())
	assert.Equal(t, &notes, cmd.Notes())
}

func TestNewUpdateRouteCommand_AllFieldsNil(t *testing.T) {
	cmd, err := commands.NewUpdateRouteCommand(kernel.NewUUID(), nil, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.Name())
	assert.Nil(t, cmd.DriverID())
	assert.Nil(t, cmd.Notes())
}

func TestNewUpdateRouteCommand_Errors(t *testing.T) {
	t.Run("invalid route id", func(t *testing.T) {
		_, err := commands.NewUpdateRouteCommand(kernel.UUID{}, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("invalid driver id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewUpdateRouteCommand(kernel.NewUUID(), nil, &zero, nil)
		require.Error(t, err)
	})
}

func TestUpdateRouteCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.UpdateRouteCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateRouteCommandIsNotConstructed)
}

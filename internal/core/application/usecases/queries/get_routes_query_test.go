package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRoutesQuery_NoFilters_Valid(t *testing.T) {
	query, err := queries.NewGetRoutesQuery(nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Nil(t, query.Date())
	assert.Nil(t, query.DriverID())
	assert.Nil(t, query.Status())
}

func TestNewGetRoutesQuery_AllFilters_Valid(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()
	status := route.StatusPlanned

	query, err := queries.NewGetRoutesQuery(&date, &driverID, &status)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	require.NotNil(t, query.Date())
	assert.Equal(t, date, *query.Date())
	require.NotNil(t, query.DriverID())
	assert.Equal(t, driverID, *query.DriverID())
	require.NotNil(t, query.Status())
	assert.Equal(t, status, *query.Status())
}

func TestNewGetRoutesQuery_InvalidDriverID_ReturnsError(t *testing.T) {
	driverID := kernel.UUID{}

	_, err := queries.NewGetRoutesQuery(nil, &driverID, nil)
	require.Error(t, err)
}

func TestNewGetRoutesQuery_InvalidStatus_ReturnsError(t *testing.T) {
	status := route.Status(99)

	_, err := queries.NewGetRoutesQuery(nil, nil, &status)
	require.Error(t, err)
}

func TestGetRoutesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRoutesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRoutesQueryIsNotConstructed)
}

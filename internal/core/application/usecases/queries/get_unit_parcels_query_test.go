package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnitParcelsQuery_Valid(t *testing.T) {
	unitID := kernel.NewUUID()

	query, err := queries.NewGetUnitParcelsQuery(parcel.ContainmentPallet, unitID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, parcel.ContainmentPallet, query.UnitKind())
	assert.True(t, query.UnitID().IsEqual(unitID))
}

func TestNewGetUnitParcelsQuery_NoneKind(t *testing.T) {
	_, err := queries.NewGetUnitParcelsQuery(parcel.ContainmentNone, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetUnitParcelsQuery_EmptyUnitID(t *testing.T) {
	_, err := queries.NewGetUnitParcelsQuery(parcel.ContainmentDispatch, kernel.UUID{})
	require.Error(t, err)
}

func TestGetUnitParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnitParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnitParcelsQueryIsNotConstructed)
}

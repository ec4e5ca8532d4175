package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelHistoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetParcelHistoryQuery("HBL250831MGYE00001", true)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "HBL250831MGYE00001", query.TrackingCode())
	assert.True(t, query.PublicOnly())
}

func TestNewGetParcelHistoryQuery_EmptyCode(t *testing.T) {
	_, err := queries.NewGetParcelHistoryQuery("", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetParcelHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelHistoryQueryIsNotConstructed)
}

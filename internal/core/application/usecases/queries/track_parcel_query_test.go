package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackParcelQuery_Valid(t *testing.T) {
	query, err := queries.NewTrackParcelQuery("HBL250831MGYE00001")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "HBL250831MGYE00001", query.TrackingCode())
}

func TestNewTrackParcelQuery_EmptyCode(t *testing.T) {
	_, err := queries.NewTrackParcelQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTrackParcelQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackParcelQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackParcelQueryIsNotConstructed)
}

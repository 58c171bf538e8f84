package Models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityKindRoutine(t *testing.T) {
	for _, k := range RoutineKinds {
		require.True(t, k.Routine(), string(k))
		require.True(t, k.Valid(), string(k))
	}

	// Need notes are valid log entries but not activity buttons.
	require.False(t, ActivityNeedNote.Routine())
	require.True(t, ActivityNeedNote.Valid())

	require.False(t, ActivityKind("Bain").Routine())
	require.False(t, ActivityKind("Bain").Valid())
}

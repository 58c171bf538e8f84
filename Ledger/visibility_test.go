package Ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hpoinseaux/Assmatapp/Models"
)

func TestVisibleToParent(t *testing.T) {
	cutoff := Models.ClockTime{Hour: 8, Minute: 0}
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 3, h, m, 0, 0, time.Local)
	}

	require.False(t, VisibleToParent(at(7, 59), cutoff))
	require.True(t, VisibleToParent(at(8, 0), cutoff))
	require.True(t, VisibleToParent(at(23, 59), cutoff))

	evening := Models.ClockTime{Hour: 17, Minute: 0}
	require.False(t, VisibleToParent(at(16, 59), evening))
	require.True(t, VisibleToParent(at(17, 0), evening))
}

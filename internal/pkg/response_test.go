package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(25, 1, 10)
	require.Equal(t, int64(25), meta.Total)
	require.Equal(t, int64(3), meta.Pages)
	require.Equal(t, 1, meta.Page)

	require.Equal(t, int64(0), NewPageMeta(0, 1, 10).Pages)
	require.Equal(t, int64(1), NewPageMeta(10, 1, 10).Pages)
	require.Equal(t, int64(2), NewPageMeta(11, 1, 10).Pages)
}

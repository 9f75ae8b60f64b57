package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "team-rocket", Slugify("Team Rocket"))
	require.Equal(t, "a-b-c", Slugify("A B C"))
	require.Equal(t, "plain", Slugify("plain"))
}

func TestSlugify_Idempotent(t *testing.T) {
	once := Slugify("Team Rocket")
	require.Equal(t, once, Slugify(once))
}

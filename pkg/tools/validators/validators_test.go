package validators

import (
	"github.com/matbuddy/go-matbuddy/pkg/tools/random"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEmail(t *testing.T) {
	t.Run("Valid email", func(t *testing.T) {
		email := random.Email()
		require.True(t, Email(email))
	})

	t.Run("Invalid email", func(t *testing.T) {
		email := random.String(16)
		require.False(t, Email(email))
	})
}

func TestURL(t *testing.T) {
	t.Run("Valid url", func(t *testing.T) {
		url := "https://example.com/" + random.String(8) + ".jpg"
		require.True(t, URL(url))
	})

	t.Run("Invalid url", func(t *testing.T) {
		url := random.String(16)
		require.False(t, URL(url))
	})
}

package random

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestString(t *testing.T) {
	n := 10
	str := String(n)

	require.IsType(t, "", str)
	require.Len(t, str, n)
}

func TestInt(t *testing.T) {
	min, max := int64(1), int64(100)
	got := Int(min, max)

	require.GreaterOrEqual(t, got, min)
	require.LessOrEqual(t, got, max)
}

func TestEmail(t *testing.T) {
	email := Email()

	require.IsType(t, "", email)
	require.Contains(t, email, "@")
}

func TestStringSlice(t *testing.T) {
	n := 5
	ss := StringSlice(n)

	require.IsType(t, []string{}, ss)
	require.Len(t, ss, n)
}

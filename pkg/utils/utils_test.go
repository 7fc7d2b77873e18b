package utils

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentMap(t *testing.T) {
	m := NewConcurrentMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestReadFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("increments", 10, "")
	cmd.Flags().Duration("timeout", 0, "")
	cmd.Flags().Bool("progress", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--increments", "42", "--timeout", "2s"}))

	n, err := ReadIntFlag(cmd, "increments")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	d, err := ReadDurationFlag(cmd, "timeout")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	assert.False(t, ReadBooleanFlag(cmd, "progress"))
	assert.True(t, FlagChanged(cmd, "increments"))
	assert.False(t, FlagChanged(cmd, "progress"))
	assert.False(t, FlagChanged(cmd, "missing"))
	assert.Equal(t, "", ReadStringFlag(cmd, "missing"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.12346", FormatSeconds(0.123456))
	assert.Equal(t, "2000000", FormatCount(2_000_000))
	assert.Equal(t, int64(5), LostUpdates(95, 100))
	assert.Equal(t, int64(0), LostUpdates(100, 100))
}

package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterEnterHasNoUpperClamp(t *testing.T) {
	c := NewCounter(0, 2)
	for i := 0; i < 5; i++ {
		c.Enter()
	}
	require.Equal(t, 5, c.Current)
	require.Equal(t, 2, c.Maximum)
	require.False(t, c.Allow())
}

func TestCounterLeave(t *testing.T) {
	t.Run("never below zero", func(t *testing.T) {
		c := NewCounter(0, 0)
		require.False(t, c.Leave())
		require.Equal(t, 0, c.Current)
	})

	t.Run("reports full", func(t *testing.T) {
		c := NewCounter(3, 3)
		require.True(t, c.Leave())
		require.Equal(t, 2, c.Current)
		require.False(t, c.Leave())
		require.Equal(t, 1, c.Current)
	})

	t.Run("over capacity is not full", func(t *testing.T) {
		c := NewCounter(4, 3)
		require.False(t, c.Leave())
		require.Equal(t, 3, c.Current)
	})
}

func TestCounterAdjust(t *testing.T) {
	tests := []struct {
		name        string
		start       [2]int
		target      Target
		delta       int
		wantCurrent int
		wantMaximum int
	}{
		{"inc current past maximum", [2]int{5, 5}, TargetCurrent, 1, 6, 5},
		{"inc maximum", [2]int{0, 20}, TargetMaximum, 1, 0, 21},
		{"dec current", [2]int{2, 20}, TargetCurrent, -1, 1, 20},
		{"dec current at zero", [2]int{0, 20}, TargetCurrent, -1, 0, 20},
		{"dec maximum at zero", [2]int{0, 0}, TargetMaximum, -1, 0, 0},
		{"dec maximum below current", [2]int{7, 5}, TargetMaximum, -1, 7, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(tt.start[0], tt.start[1])
			c.takeDirty()
			c.Adjust(tt.target, tt.delta)
			require.Equal(t, tt.wantCurrent, c.Current)
			require.Equal(t, tt.wantMaximum, c.Maximum)
			require.True(t, c.takeDirty())
		})
	}
}

func TestCounterReset(t *testing.T) {
	c := NewCounter(0, 20)
	c.Enter()
	c.Adjust(TargetMaximum, 5)
	c.Reset()
	require.Equal(t, 0, c.Current)
	require.Equal(t, 20, c.Maximum)
}

func TestCounterDirty(t *testing.T) {
	c := NewCounter(0, 20)
	require.True(t, c.takeDirty(), "new counter renders once")
	require.False(t, c.takeDirty())

	c.Enter()
	require.True(t, c.takeDirty())
	require.False(t, c.takeDirty())
}

func TestTargetString(t *testing.T) {
	require.Equal(t, "current", TargetCurrent.String())
	require.Equal(t, "maximum", TargetMaximum.String())
}

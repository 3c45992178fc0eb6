package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayFirstRefreshInitializes(t *testing.T) {
	d := display{width: 16, reinit: 60000, needInit: true}
	c := NewCounter(0, 20)

	f := d.refresh(c, 100)
	require.NotNil(t, f)
	require.True(t, f.Reinit)
	require.Equal(t, [2]string{"Current : 0     ", "Maximum : 20    "}, f.Lines)

	require.Nil(t, d.refresh(c, 200), "clean and not due")
}

func TestDisplayRendersWhenDirty(t *testing.T) {
	d := display{width: 16, reinit: 60000, needInit: true}
	c := NewCounter(0, 20)
	d.refresh(c, 0)

	c.Enter()
	f := d.refresh(c, 10)
	require.NotNil(t, f)
	require.False(t, f.Reinit)
	require.Equal(t, "Current : 1     ", f.Lines[0])
}

func TestDisplayPeriodicReinit(t *testing.T) {
	d := display{width: 16, reinit: 60000, needInit: true}
	c := NewCounter(0, 20)
	d.refresh(c, 1000)

	require.Nil(t, d.refresh(c, 60999))

	f := d.refresh(c, 61000)
	require.NotNil(t, f)
	require.True(t, f.Reinit)

	require.Nil(t, d.refresh(c, 61001))
}

func TestDisplayPad(t *testing.T) {
	d := display{width: 16}
	require.Equal(t, "Current : 7     ", d.pad("Current : 7"))
	require.Equal(t, "Current : 1234567890", d.pad("Current : 1234567890"))
	require.Len(t, d.pad(""), 16)
}

func TestDisplayNarrowWidthKeepsDigits(t *testing.T) {
	d := display{width: 12, reinit: 60000, needInit: true}
	c := NewCounter(0, 20)

	f := d.refresh(c, 0)
	require.NotNil(t, f)
	require.Equal(t, [2]string{"Current : 0 ", "Maximum : 20"}, f.Lines)
}

func TestDisplayCountWiderThanLine(t *testing.T) {
	d := display{width: 16, reinit: 60000, needInit: true}
	c := NewCounter(0, 20)
	d.refresh(c, 0)

	c.Adjust(TargetMaximum, 1234567-20)
	f := d.refresh(c, 10)
	require.NotNil(t, f)
	require.Equal(t, "Maximum : 1234567", f.Lines[1])
}

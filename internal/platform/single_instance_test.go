package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance(t *testing.T) {
	const name = "DeskBreak-instance-test"

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	reacquired, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, reacquired.Release())
}

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	first := portFromName("DeskBreak")
	second := portFromName("DeskBreak")
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)

	assert.NotEqual(t, portFromName("DeskBreak"), portFromName("deskbreak"))
}

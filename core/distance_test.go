// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/negpath/core"
)

func TestDistance_ZeroValueIsUnreached(t *testing.T) {
	var d core.Distance
	assert.False(t, d.IsFinite())
	assert.Equal(t, core.Unreached(), d)
	assert.Equal(t, "inf", d.String())
}

func TestDistance_AddUnreachedStaysUnreached(t *testing.T) {
	// A very negative weight must not turn "unreached" into a small finite value.
	d, ok := core.Unreached().Add(math.MinInt64)
	assert.True(t, ok)
	assert.False(t, d.IsFinite())

	d, ok = core.Unreached().Add(-1)
	assert.True(t, ok)
	assert.False(t, d.IsFinite())
}

func TestDistance_AddFinite(t *testing.T) {
	d, ok := core.Finite(5).Add(-7)
	assert.True(t, ok)
	v, finite := d.Value()
	assert.True(t, finite)
	assert.Equal(t, int64(-2), v)
}

func TestDistance_AddOverflow(t *testing.T) {
	_, ok := core.Finite(math.MaxInt64).Add(1)
	assert.False(t, ok)

	_, ok = core.Finite(math.MinInt64).Add(-1)
	assert.False(t, ok)

	d, ok := core.Finite(math.MaxInt64).Add(-1)
	assert.True(t, ok)
	assert.Equal(t, core.Finite(math.MaxInt64-1), d)
}

func TestDistance_Less(t *testing.T) {
	inf := core.Unreached()
	assert.True(t, core.Finite(math.MaxInt64).Less(inf))
	assert.False(t, inf.Less(core.Finite(math.MaxInt64)))
	assert.False(t, inf.Less(inf))
	assert.True(t, core.Finite(-3).Less(core.Finite(2)))
	assert.False(t, core.Finite(2).Less(core.Finite(2)))
}

func TestDistances(t *testing.T) {
	d := core.NewDistances(4, 1)
	assert.Len(t, d, 4)
	assert.Equal(t, core.Finite(0), d.At(1))
	assert.False(t, d.At(0).IsFinite())
	assert.False(t, d.At(9).IsFinite())
	assert.Equal(t, 1, d.Reached())
	assert.Equal(t, "[inf 0 inf inf]", d.String())

	// An out-of-range source leaves everything unreached.
	assert.Zero(t, core.NewDistances(3, 7).Reached())
}

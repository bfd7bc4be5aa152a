package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinStakeFloor(t *testing.T) {
	p := Policy{MinStakeBps: 500} // 5%

	assert.Equal(t, int64(15_000), p.MinStakeFloor(300_000))
	// 5% of 99 is 4.95; the floor rounds up.
	assert.Equal(t, int64(5), p.MinStakeFloor(99))
	assert.Equal(t, int64(1), p.MinStakeFloor(1))
}

func TestMinStakeFloorDisabled(t *testing.T) {
	p := Policy{MinStakeBps: 0}
	assert.Equal(t, int64(1), p.MinStakeFloor(300_000))
}

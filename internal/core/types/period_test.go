package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.March, p.Month)
	assert.Equal(t, "2026-03", p.String())
	assert.Equal(t, "March 2026", p.Label())
}

func TestParsePeriod_Invalid(t *testing.T) {
	for _, s := range []string{"", "2026", "2026-13", "03-2026", "2026/03"} {
		_, err := ParsePeriod(s)
		assert.Error(t, err, s)
	}
}

func TestPeriod_Partition(t *testing.T) {
	p := Period{Year: 2026, Month: time.March}

	within := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	before := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	priorYear := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, p.Contains(within))
	assert.False(t, p.IsBefore(within))

	assert.True(t, p.IsBefore(before))
	assert.False(t, p.Contains(before))

	assert.True(t, p.IsBefore(priorYear))

	// After-period dates land in neither bucket.
	assert.False(t, p.Contains(after))
	assert.False(t, p.IsBefore(after))

	// The first day of the period is inside it, not before it.
	first := p.Start()
	assert.True(t, p.Contains(first))
	assert.False(t, p.IsBefore(first))
}

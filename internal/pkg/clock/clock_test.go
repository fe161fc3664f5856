package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
)

func TestRealIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.New().Now().Location())
}

func TestFixed(t *testing.T) {
	start := time.Date(3025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)
	assert.Equal(t, start, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

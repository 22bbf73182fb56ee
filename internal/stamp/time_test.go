package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_Format(t *testing.T) {
	assert.Equal(t, "8:05", Time(485).Clock())
	assert.Equal(t, "0:00", Time(0).Clock())
	assert.Equal(t, "8.08", Time(485).Hours())
	assert.Equal(t, "1:30 -- 1.50", Time(90).Both())
}

func TestTime_FloorDiv(t *testing.T) {
	assert.Equal(t, Time(15), Time(30).FloorDiv(2))
	assert.Equal(t, Time(3), Time(10).FloorDiv(3))
	assert.Equal(t, Time(-4), Time(-10).FloorDiv(3))
	assert.Equal(t, Time(-5), Time(-10).FloorDiv(2))
}

func TestTime_Nearest(t *testing.T) {
	assert.Equal(t, Time(210), Time(215).Nearest(15))
	assert.Equal(t, Time(300), Time(295).Nearest(15))
	assert.Equal(t, Time(0), Time(7).Nearest(15))
	assert.Equal(t, Time(30), Time(23).Nearest(15))
	assert.Equal(t, Time(-15), Time(-10).Nearest(15))
	// Halves round to even.
	assert.Equal(t, Time(0), Time(15).Nearest(30))
	assert.Equal(t, Time(60), Time(45).Nearest(30))
	assert.Equal(t, Time(60), Time(75).Nearest(30))
}

func TestTime_NearestIdempotent(t *testing.T) {
	for x := Time(-200); x <= 1000; x++ {
		once := x.Nearest(DefaultGranularity)
		assert.Equal(t, once, once.Nearest(DefaultGranularity), "x=%d", x)
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("0815")
	require.NoError(t, err)
	assert.Equal(t, Time(495), got)

	got, err = ParseClock("810")
	require.NoError(t, err)
	assert.Equal(t, Time(490), got)

	for _, bad := range []string{"", "12", "08x5", "0860", "-100"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

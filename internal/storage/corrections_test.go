package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/leima/internal/stamp"
)

func TestParseCorrections_ZeroTotalIsUncorrected(t *testing.T) {
	cors, err := ParseCorrections(strings.NewReader("0\n\n"))
	require.NoError(t, err)
	require.Len(t, cors, 1)
	assert.Nil(t, cors[0])
}

func TestParseCorrections_Blocks(t *testing.T) {
	input := "510\n100 210\nMR 300\n\n\n450\n\n"
	cors, err := ParseCorrections(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cors, 3)

	require.NotNil(t, cors[0])
	assert.Equal(t, stamp.Time(510), cors[0].Total)
	assert.Equal(t, stamp.LabelTimes{{Label: "100", Time: 210}, {Label: "MR", Time: 300}}, cors[0].Cors)

	assert.Nil(t, cors[1])

	require.NotNil(t, cors[2])
	assert.Equal(t, stamp.Time(450), cors[2].Total)
	assert.Empty(t, cors[2].Cors)
}

func TestParseCorrections_NoTrailingBlank(t *testing.T) {
	cors, err := ParseCorrections(strings.NewReader("480\n7 480"))
	require.NoError(t, err)
	require.Len(t, cors, 1)
	assert.Equal(t, stamp.LabelTimes{{Label: "7", Time: 480}}, cors[0].Cors)
}

func TestParseCorrections_Malformed(t *testing.T) {
	for _, input := range []string{"eight\n", "480\nMR\n", "480\nMR lots\n"} {
		_, err := ParseCorrections(strings.NewReader(input))
		var pe *ParseError
		assert.ErrorAs(t, err, &pe, input)
	}
}

func TestCorrections_RoundTrip(t *testing.T) {
	in := []*stamp.Correction{
		{Total: 510, Cors: stamp.LabelTimes{{Label: "100", Time: 210}, {Label: "200", Time: 300}}},
		nil,
		{Total: 0, Cors: stamp.LabelTimes{{Label: "MR", Time: 60}}},
		{Total: 420},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCorrections(&buf, in))

	out, err := ParseCorrections(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	assert.Equal(t, in[0], out[0])
	assert.Nil(t, out[1])
	assert.Nil(t, out[2], "zero total reads back as uncorrected")
	assert.Equal(t, stamp.Time(420), out[3].Total)
	assert.Empty(t, out[3].Cors)
}

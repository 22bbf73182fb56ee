package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticketDay() *WorkDay {
	return NewWorkDay(entries(
		Entry{At: 480, Category: Bill, Label: "100"},
		Entry{At: 680, Category: Bill, Label: "200"},
		Entry{At: 960},
	))
}

func TestRedistribute(t *testing.T) {
	d := ticketDay()
	require.Equal(t, Time(480), d.WorkTime())

	cor, err := Redistribute(d, 510, DefaultGranularity)
	require.NoError(t, err)
	assert.Equal(t, Time(510), cor.Total)
	assert.Equal(t, LabelTimes{{"100", 210}, {"200", 300}}, cor.Cors)
}

func TestRedistribute_NegativeDelta(t *testing.T) {
	d := ticketDay()

	// -25 / 2 floors to -13.
	cor, err := Redistribute(d, 455, DefaultGranularity)
	require.NoError(t, err)
	assert.Equal(t, LabelTimes{{"100", 180}, {"200", 270}}, cor.Cors)
}

func TestRedistribute_NoTickets(t *testing.T) {
	d := NewWorkDay(entries(Entry{At: 480, Category: Admin}, Entry{At: 500}))
	_, err := Redistribute(d, 480, DefaultGranularity)
	assert.ErrorIs(t, err, ErrNoTickets)
}

func TestCorrectedDay_Total(t *testing.T) {
	d := ticketDay()

	plain := CorrectedDay{WorkDay: d}
	assert.False(t, plain.IsCorrected())
	assert.Equal(t, d.WorkTime(), plain.Total())

	corrected := CorrectedDay{WorkDay: d, Correction: &Correction{Total: 300}}
	assert.True(t, corrected.IsCorrected())
	assert.Equal(t, Time(300), corrected.Total())
}

func TestCorrectedDay_Corrected(t *testing.T) {
	d := NewWorkDay(entries(
		Entry{At: 480, Category: Bill, Label: "100"},
		Entry{At: 540, Category: Bill, Label: "200"},
		Entry{At: 600, Category: Bill, Label: "notes"},
		Entry{At: 630},
	))
	c := CorrectedDay{WorkDay: d, Correction: &Correction{
		Total: 200,
		Cors:  LabelTimes{{"100", 75}, {"200", 0}},
	}}

	assert.Equal(t, LabelTimes{{"100", 75}, {"200", 60}}, c.CorrectedTickets())
	assert.Equal(t, LabelTimes{{"100", 75}, {"200", 60}, {"notes", 30}}, c.CorrectedBills())

	c.Correction = nil
	assert.Equal(t, LabelTimes{{"100", 60}, {"200", 60}}, c.CorrectedTickets())
}

func TestPair(t *testing.T) {
	days := []*WorkDay{ticketDay(), ticketDay(), ticketDay()}
	cor := &Correction{Total: 500}

	paired := Pair(days, []*Correction{nil, cor})
	require.Len(t, paired, 3)
	assert.Nil(t, paired[0].Correction)
	assert.Same(t, cor, paired[1].Correction)
	assert.Nil(t, paired[2].Correction)
	assert.Equal(t, 2, paired[2].Index)
	assert.Equal(t, Time(500), paired[1].Total())
	assert.Equal(t, Time(480), paired[2].Total())
}

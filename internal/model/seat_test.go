package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorText(set ...int) string {
	vals := make([]string, SeatCount)
	for i := range vals {
		vals[i] = "0"
	}
	for _, i := range set {
		vals[i] = "1"
	}
	return "[" + strings.Join(vals, ",") + "]"
}

func TestDecodeSeats_RoundTrip(t *testing.T) {
	for _, set := range [][]int{nil, {0}, {24}, {0, 6, 12, 18, 24}} {
		text := vectorText(set...)
		v, err := DecodeSeats(text)
		require.NoError(t, err)
		assert.Equal(t, text, v.Encode())
		assert.Equal(t, len(set), v.Count())

		again, err := DecodeSeats(v.Encode())
		require.NoError(t, err)
		assert.Equal(t, v, again)
	}
}

func TestDecodeSeats_ToleratesSpacesAroundTokens(t *testing.T) {
	text := "[ 1, 0 ," + strings.Repeat(" 0,", 22) + "0 ]"
	v, err := DecodeSeats(text)
	require.NoError(t, err)
	assert.Equal(t, 1, v[0])
	assert.Equal(t, vectorText(0), v.Encode())
}

func TestDecodeSeats_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no brackets":    strings.Trim(vectorText(), "[]"),
		"leading space":  " " + vectorText(),
		"too short":      "[" + strings.Repeat("0,", 23) + "0]",
		"too long":       "[" + strings.Repeat("0,", 25) + "0]",
		"bad token":      "[2" + vectorText()[2:],
		"empty token":    "[," + vectorText()[3:],
		"python literal": "[True" + vectorText()[2:],
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSeats(text)
			assert.ErrorIs(t, err, ErrInvalidSeatVector)
		})
	}
}

func TestSeatLabels(t *testing.T) {
	assert.Equal(t, "A1", SeatLabel(0))
	assert.Equal(t, "A5", SeatLabel(4))
	assert.Equal(t, "B1", SeatLabel(5))
	assert.Equal(t, "E5", SeatLabel(24))

	for i := 0; i < SeatCount; i++ {
		idx, err := SeatIndex(SeatLabel(i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	for _, bad := range []string{"", "A", "A0", "A6", "F1", "a1", "A11", "1A"} {
		_, err := SeatIndex(bad)
		assert.ErrorIs(t, err, ErrInvalidSeatLabel, bad)
	}
	assert.Panics(t, func() { SeatLabel(25) })
}

func TestSeatVectorArithmetic(t *testing.T) {
	a, err := SeatsFromLabels([]string{"A1", "B2"})
	require.NoError(t, err)
	b, err := SeatsFromLabels([]string{"B2", "C3"})
	require.NoError(t, err)

	or := a.Or(b)
	assert.Equal(t, []string{"A1", "B2", "C3"}, or.Labels())

	sum := a.Add(b)
	assert.Equal(t, 2, sum[6])

	assert.Equal(t, []string{"A1"}, a.Sub(b).Labels())
	assert.True(t, a.Sub(a).Sub(a).IsZero(), "subtraction clamps at zero")
	assert.Equal(t, SeatCount-2, a.Free())

	_, err = SeatsFromLabels([]string{"Z9"})
	assert.ErrorIs(t, err, ErrInvalidSeatLabel)
}

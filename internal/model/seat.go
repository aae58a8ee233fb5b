package model

import (
	"errors"
	"fmt"
	"strings"
)

// Seat grid dimensions.  Every showing uses the same 5x5 hall, so the
// occupancy of a showing fits in a fixed-length vector stored in row-major
// order: index = row*SeatCols + col.
const (
	SeatRows  = 5
	SeatCols  = 5
	SeatCount = SeatRows * SeatCols
)

// rowLabels and colLabels are the only characters allowed in a seat label.
const (
	rowLabels = "ABCDE"
	colLabels = "12345"
)

// ErrInvalidSeatVector is returned by DecodeSeats when the text is not a
// bracketed list of exactly SeatCount 0/1 tokens.
var ErrInvalidSeatVector = errors.New("invalid seat vector")

// ErrInvalidSeatLabel is returned by SeatIndex for labels outside A1..E5.
var ErrInvalidSeatLabel = errors.New("invalid seat label")

// SeatVector holds one value per seat.  Decoded vectors only ever contain
// 0 or 1; sums built by the consistency checker may contain larger
// counts, which is how double bookings surface.
type SeatVector [SeatCount]int

// DecodeSeats parses the textual form "[v0,v1,...,v24]".  Whitespace
// around individual tokens is tolerated; anything else is rejected.
func DecodeSeats(text string) (SeatVector, error) {
	var v SeatVector
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") || len(text) < 2 {
		return v, fmt.Errorf("%w: missing brackets", ErrInvalidSeatVector)
	}
	tokens := strings.Split(text[1:len(text)-1], ",")
	if len(tokens) != SeatCount {
		return v, fmt.Errorf("%w: want %d values, got %d", ErrInvalidSeatVector, SeatCount, len(tokens))
	}
	for i, tok := range tokens {
		switch strings.TrimSpace(tok) {
		case "0":
			v[i] = 0
		case "1":
			v[i] = 1
		default:
			return SeatVector{}, fmt.Errorf("%w: value %q at position %d", ErrInvalidSeatVector, tok, i)
		}
	}
	return v, nil
}

// Encode renders the canonical text form with no interior whitespace.
func (v SeatVector) Encode() string {
	var b strings.Builder
	b.Grow(SeatCount*2 + 1)
	b.WriteByte('[')
	for i, n := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteByte(']')
	return b.String()
}

func (v SeatVector) String() string { return v.Encode() }

// IsZero reports whether no seat is set.
func (v SeatVector) IsZero() bool {
	for _, n := range v {
		if n != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set seats.
func (v SeatVector) Count() int {
	c := 0
	for _, n := range v {
		if n != 0 {
			c++
		}
	}
	return c
}

// Free returns the number of unoccupied seats.
func (v SeatVector) Free() int { return SeatCount - v.Count() }

// Or sets every seat that is set in o.  Existing occupancy is kept.
func (v SeatVector) Or(o SeatVector) SeatVector {
	for i := range v {
		if o[i] != 0 {
			v[i] = 1
		}
	}
	return v
}

// Add returns the component-wise sum of v and o.
func (v SeatVector) Add(o SeatVector) SeatVector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sub returns v minus o component-wise, clamped at zero.
func (v SeatVector) Sub(o SeatVector) SeatVector {
	for i := range v {
		v[i] = max(0, v[i]-o[i])
	}
	return v
}

// Labels lists the labels of every set seat in index order.
func (v SeatVector) Labels() []string {
	out := make([]string, 0, v.Count())
	for i, n := range v {
		if n != 0 {
			out = append(out, SeatLabel(i))
		}
	}
	return out
}

// SeatsFromLabels builds a vector with exactly the given seats set.
func SeatsFromLabels(labels []string) (SeatVector, error) {
	var v SeatVector
	for _, l := range labels {
		idx, err := SeatIndex(l)
		if err != nil {
			return SeatVector{}, err
		}
		v[idx] = 1
	}
	return v, nil
}

// SeatLabel maps a row-major index to its "{row}{col}" label, e.g. 0 -> "A1"
// and 24 -> "E5".  It panics on an out of range index.
func SeatLabel(index int) string {
	if index < 0 || index >= SeatCount {
		panic(fmt.Sprintf("seat index %d out of range", index))
	}
	return string(rowLabels[index/SeatCols]) + string(colLabels[index%SeatCols])
}

// SeatIndex is the inverse of SeatLabel.
func SeatIndex(label string) (int, error) {
	if len(label) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}
	row := strings.IndexByte(rowLabels, label[0])
	col := strings.IndexByte(colLabels, label[1])
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}
	return row*SeatCols + col, nil
}

package dataset

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const day = 24 * time.Hour

// dateLayout is the wire layout of every generated date.
const dateLayout = "2006-01-02"

// rnd wraps the generator's random stream with bounded-domain helpers.
type rnd struct {
	r *rand.Rand
}

// intN returns an int in [0, n).
func (x rnd) intN(n int) int {
	if n <= 0 {
		return 0
	}
	return x.r.IntN(n)
}

// between returns an int in [lo, hi].
func (x rnd) between(lo, hi int) int {
	return lo + x.intN(hi-lo+1)
}

// int64Between returns an int64 in [lo, hi].
func (x rnd) int64Between(lo, hi int64) int64 {
	return lo + x.r.Int64N(hi-lo+1)
}

// chance returns true with probability p.
func (x rnd) chance(p float64) bool {
	return x.r.Float64() < p
}

// pick returns a uniformly chosen element of items.
func pick[T any](x rnd, items []T) T {
	return items[x.intN(len(items))]
}

// timeBetween returns an instant uniformly drawn from [start, end).
// It returns start when the window is empty.
func (x rnd) timeBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(x.r.Int64N(int64(span))))
}

// digits returns n random decimal digits.
func (x rnd) digits(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + x.intN(10)))
	}
	return sb.String()
}

const alphaNumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// alnum returns n lower-case alphanumerics.
func (x rnd) alnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumeric[x.intN(len(alphaNumeric))]
	}
	return string(b)
}

// pattern replaces every '#' in p with a random digit.
func (x rnd) pattern(p string) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for i := 0; i < len(p); i++ {
		if p[i] == '#' {
			sb.WriteByte(byte('0' + x.intN(10)))
			continue
		}
		sb.WriteByte(p[i])
	}
	return sb.String()
}

func date(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func padded(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

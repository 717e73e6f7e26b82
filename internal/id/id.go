package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 from crypto/rand.
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.NewString()
}

// Short generates a short random hex ID (16 characters).
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Source generates UUIDs from a caller-supplied random stream.
// A Source is not safe for concurrent use unless its reader is.
type Source struct {
	r io.Reader
}

// NewSource returns a Source reading from r. A nil reader means crypto/rand.
func NewSource(r io.Reader) *Source {
	if r == nil {
		r = rand.Reader
	}
	return &Source{r: r}
}

// UUID returns the next UUID v4 from the source. Errors from the
// underlying reader are returned unchanged in meaning, wrapped.
func (s *Source) UUID() (string, error) {
	u, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return u.String(), nil
}

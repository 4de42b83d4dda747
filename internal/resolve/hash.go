package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxHashAttempts bounds the collision-retry loop. A single collision is
// retried silently; exhausting every attempt is fatal.
const maxHashAttempts = 10

// hashLength is the number of hex characters kept from the UUID.
const hashLength = 12

// ErrCollisionExhausted means every generated filename already existed at
// the target location.
var ErrCollisionExhausted = errors.New("auto-generated filename collisions exhausted")

// HashGenerator produces auto-generated output filenames of the form
// {yyyymmdd}_{hash}.md, unique within their target directory.
type HashGenerator struct {
	now    func() time.Time
	random func() string
}

// NewHashGenerator returns a generator backed by the wall clock and UUID
// randomness.
func NewHashGenerator() *HashGenerator {
	return &HashGenerator{
		now: time.Now,
		random: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:hashLength]
		},
	}
}

// Generate returns a filename that does not collide with an existing file in
// dir. The directory need not exist yet; a missing directory trivially has no
// collisions. Returns ErrCollisionExhausted after too many occupied names.
func (g *HashGenerator) Generate(dir string) (string, error) {
	date := g.now().Format("20060102")

	for attempt := 0; attempt < maxHashAttempts; attempt++ {
		name := fmt.Sprintf("%s_%s.md", date, g.random())
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			if os.IsNotExist(err) {
				return name, nil
			}
			return "", fmt.Errorf("probe %s: %w", filepath.Join(dir, name), err)
		}
	}
	return "", fmt.Errorf("%w: %d attempts in %s", ErrCollisionExhausted, maxHashAttempts, dir)
}

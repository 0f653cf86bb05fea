package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/repository"
	"github.com/rs/zerolog/log"
)

// testCodePrefix plus 8 uppercase hex characters forms a shareable test code,
// e.g. "TEST-3FA9C01B".
const (
	testCodePrefix     = "TEST-"
	testCodeHexLen     = 8
	testCodeMaxRetries = 5
)

// codeSource yields candidate code suffixes. Swapped out in tests to force
// collisions.
type codeSource func() string

func uuidCodeSource() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:testCodeHexLen])
}

// TestCodeGenerator produces unique test codes, retrying on collision. The
// unique index on tests.test_code is the real guard against concurrent
// creation; the pre-check just keeps collisions out of the normal path.
type TestCodeGenerator interface {
	Generate() (string, error)
}

type testCodeGenerator struct {
	testRepo repository.TestRepository
	source   codeSource
}

func NewTestCodeGenerator(testRepo repository.TestRepository) TestCodeGenerator {
	return &testCodeGenerator{testRepo: testRepo, source: uuidCodeSource}
}

func (g *testCodeGenerator) Generate() (string, error) {
	for attempt := 0; attempt < testCodeMaxRetries; attempt++ {
		code := testCodePrefix + g.source()
		exists, err := g.testRepo.ExistsByCode(code)
		if err != nil {
			return "", fmt.Errorf("checking test code %s: %w", code, err)
		}
		if !exists {
			return code, nil
		}
		log.Warn().Str("test_code", code).Int("attempt", attempt+1).Msg("Test code collision, regenerating")
	}
	// A 32-bit keyspace does not collide five times in a row unless the
	// repository is misconfigured or corrupted.
	return "", apperr.Conflictf("could not generate a unique test code after %d attempts", testCodeMaxRetries)
}

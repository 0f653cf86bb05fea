package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/model"
	"gorm.io/gorm"
)

// fakeTestRepo satisfies repository.TestRepository with an in-memory code set.
// Codes in taken pass the existence pre-check but fail the insert with a
// duplicate-key error, like a concurrent creator winning the code.
type fakeTestRepo struct {
	existing map[string]bool
	taken    map[string]bool
	created  []string
	err      error
}

func (f *fakeTestRepo) Create(test *model.Test) error {
	if f.taken[test.TestCode] {
		return gorm.ErrDuplicatedKey
	}
	test.ID = uint(len(f.created) + 1)
	f.created = append(f.created, test.TestCode)
	return nil
}

func (f *fakeTestRepo) FindByID(id uint) (*model.Test, error)       { return nil, nil }
func (f *fakeTestRepo) FindByCode(code string) (*model.Test, error) { return nil, nil }
func (f *fakeTestRepo) FindAllByUser(userID uint) ([]model.Test, error) {
	return nil, nil
}

func (f *fakeTestRepo) ExistsByCode(code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[code], nil
}

var testCodePattern = regexp.MustCompile(`^TEST-[0-9A-F]{8}$`)

func TestGenerateCodeFormatAndUniqueness(t *testing.T) {
	repo := &fakeTestRepo{existing: make(map[string]bool)}
	gen := NewTestCodeGenerator(repo)

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !testCodePattern.MatchString(code) {
			t.Fatalf("code %q does not match %s", code, testCodePattern)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d generations", code, i)
		}
		seen[code] = true
		// Issued codes land in storage, so the pre-check dedups later draws.
		repo.existing[code] = true
	}
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	fixed := []string{"AAAAAAAA", "BBBBBBBB"}
	var calls int
	gen := &testCodeGenerator{
		testRepo: &fakeTestRepo{existing: map[string]bool{"TEST-AAAAAAAA": true}},
		source: func() string {
			code := fixed[calls%len(fixed)]
			calls++
			return code
		},
	}

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "TEST-BBBBBBBB" {
		t.Errorf("code = %q, want the regenerated TEST-BBBBBBBB", code)
	}
	if calls != 2 {
		t.Errorf("expected exactly one regeneration, source called %d times", calls)
	}
}

func TestGenerateExhaustsRetryBudget(t *testing.T) {
	var calls int
	gen := &testCodeGenerator{
		testRepo: &fakeTestRepo{existing: map[string]bool{"TEST-CCCCCCCC": true}},
		source: func() string {
			calls++
			return "CCCCCCCC"
		},
	}

	_, err := gen.Generate()
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
	if calls != testCodeMaxRetries {
		t.Errorf("source called %d times, want %d", calls, testCodeMaxRetries)
	}
}

func TestGeneratePropagatesRepositoryError(t *testing.T) {
	gen := &testCodeGenerator{
		testRepo: &fakeTestRepo{err: errors.New("connection refused")},
		source:   func() string { return "DDDDDDDD" },
	}

	if _, err := gen.Generate(); err == nil {
		t.Fatal("expected repository error to propagate")
	}
}

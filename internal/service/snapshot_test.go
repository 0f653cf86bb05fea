package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
)

func options(pairs ...string) model.OptionMap {
	om := model.NewOptionMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		om.Set(pairs[i], pairs[i+1])
	}
	return *om
}

func validSpec(id uint) dto.TestQuestionSpec {
	return dto.TestQuestionSpec{
		QuestionID: id,
		Question:   "What does SQL stand for?",
		Options:    options("a", "Structured Query Language", "b", "Simple Query Logic"),
		Answer:     "a",
		Category:   dto.TestQuestionCategory{ID: 1, Name: "Databases"},
		Difficulty: "Easy",
		UserID:     7,
	}
}

func TestBuildQuestionSnapshots(t *testing.T) {
	sub := "Joins"

	tests := []struct {
		name    string
		specs   []dto.TestQuestionSpec
		wantErr string
	}{
		{
			name:    "empty list",
			specs:   nil,
			wantErr: "at least one question",
		},
		{
			name: "blank question text",
			specs: func() []dto.TestQuestionSpec {
				s := validSpec(1)
				s.Question = "   "
				return []dto.TestQuestionSpec{s}
			}(),
			wantErr: "index 0 has empty question text",
		},
		{
			name: "no options",
			specs: func() []dto.TestQuestionSpec {
				s := validSpec(1)
				s.Options = model.OptionMap{}
				return []dto.TestQuestionSpec{s}
			}(),
			wantErr: "index 0 has no options",
		},
		{
			name: "blank answer",
			specs: func() []dto.TestQuestionSpec {
				s := validSpec(1)
				s.Answer = " "
				return []dto.TestQuestionSpec{s}
			}(),
			wantErr: "index 0 has an empty answer",
		},
		{
			name: "answer not an option key",
			specs: func() []dto.TestQuestionSpec {
				s := validSpec(1)
				s.Answer = "c"
				return []dto.TestQuestionSpec{s}
			}(),
			wantErr: "not one of the option keys",
		},
		{
			name: "second question invalid names its index",
			specs: func() []dto.TestQuestionSpec {
				bad := validSpec(2)
				bad.Answer = ""
				return []dto.TestQuestionSpec{validSpec(1), bad}
			}(),
			wantErr: "index 1 has an empty answer",
		},
		{
			name: "valid pair with subcategory",
			specs: func() []dto.TestQuestionSpec {
				a := validSpec(1)
				b := validSpec(2)
				b.Category.Subcategory = &sub
				return []dto.TestQuestionSpec{a, b}
			}(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildQuestionSnapshots(tc.specs)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.wantErr)
				}
				if !errors.Is(err, apperr.ErrInvalid) {
					t.Errorf("expected invalid-input error, got %v", err)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error %q does not contain %q", err.Error(), tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.specs) {
				t.Fatalf("expected %d snapshots, got %d", len(tc.specs), len(got))
			}
		})
	}
}

func TestBuildQuestionSnapshotsCaseInsensitiveAnswerKey(t *testing.T) {
	s := validSpec(1)
	s.Answer = "A"

	got, err := BuildQuestionSnapshots([]dto.TestQuestionSpec{s})
	if err != nil {
		t.Fatalf("uppercase answer key should match option %q: %v", "a", err)
	}
	if got[0].Answer != "A" {
		t.Errorf("expected answer kept as submitted, got %q", got[0].Answer)
	}
}

func TestBuildQuestionSnapshotsTrimsAnswer(t *testing.T) {
	s := validSpec(1)
	s.Answer = " b "

	got, err := BuildQuestionSnapshots([]dto.TestQuestionSpec{s})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Answer != "b" {
		t.Errorf("expected trimmed answer %q, got %q", "b", got[0].Answer)
	}
}

func TestBuildQuestionSnapshotsDetachesOptions(t *testing.T) {
	s := validSpec(1)

	snaps, err := BuildQuestionSnapshots([]dto.TestQuestionSpec{s})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Options.Set("a", "mutated after the freeze")
	s.Options.Set("z", "new key")

	if v, _ := snaps[0].Options.Get("a"); v != "Structured Query Language" {
		t.Errorf("snapshot option mutated through the request: %q", v)
	}
	if snaps[0].Options.Len() != 2 {
		t.Errorf("snapshot option count = %d, want 2", snaps[0].Options.Len())
	}
}

func TestSnapshotRoundTripPreservesFields(t *testing.T) {
	sub := "Indexing"
	s := validSpec(42)
	s.Category.Subcategory = &sub

	snaps, err := BuildQuestionSnapshots([]dto.TestQuestionSpec{s})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded, err := model.EncodeSnapshots(snaps)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := model.DecodeSnapshots(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(decoded))
	}
	got := decoded[0]
	if got.QuestionID != 42 {
		t.Errorf("question id = %d, want 42", got.QuestionID)
	}
	if got.Question != s.Question {
		t.Errorf("question text = %q, want %q", got.Question, s.Question)
	}
	if got.Category.Name != "Databases" || got.Category.Subcategory == nil || *got.Category.Subcategory != "Indexing" {
		t.Errorf("category not preserved: %+v", got.Category)
	}
	if keys := got.Options.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("option order not preserved: %v", keys)
	}
}

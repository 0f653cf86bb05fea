package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/intervia/testbank/internal/apperr"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/repository"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Subcategory{},
		&model.Question{},
		&model.Test{},
		&model.Candidate{},
		&model.Response{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func seedCreator(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	role := model.Role{RoleName: "Admin"}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("seeding role: %v", err)
	}
	user := model.User{Name: "Recruiter", Email: "recruiter@example.com", Password: "x", RoleID: role.ID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return &user
}

// seedFrozenTest persists a two-question test whose answer key is a then b.
func seedFrozenTest(t *testing.T, db *gorm.DB, userID uint) *model.Test {
	t.Helper()
	second := validSpec(2)
	second.Answer = "b"
	snapshots, err := BuildQuestionSnapshots([]dto.TestQuestionSpec{validSpec(1), second})
	if err != nil {
		t.Fatalf("building snapshots: %v", err)
	}
	data, err := model.EncodeSnapshots(snapshots)
	if err != nil {
		t.Fatalf("encoding snapshots: %v", err)
	}
	test := model.Test{TestCode: "TEST-5EED0001", QuestionsData: data, UserID: userID}
	if err := db.Create(&test).Error; err != nil {
		t.Fatalf("seeding test: %v", err)
	}
	return &test
}

func TestSubmitTestPersistsCandidateAndResponse(t *testing.T) {
	db := openTestDB(t)
	creator := seedCreator(t, db)
	test := seedFrozenTest(t, db, creator.ID)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)

	resp, err := svc.SubmitTest(dto.SubmitTestRequest{
		TestID:    test.TestCode,
		Name:      "Ada",
		Email:     "ada@example.com",
		TimeTaken: 65,
		Answers: []dto.SubmittedAnswer{
			{QuestionID: "1", Selected: "a"},
			{QuestionID: "2", Selected: "a"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != "1/2" {
		t.Errorf("score = %q, want 1/2", resp.Score)
	}
	if resp.TimeTakenFormatted != "01:05" {
		t.Errorf("time = %q, want 01:05", resp.TimeTakenFormatted)
	}

	var candidates []model.Candidate
	if err := db.Find(&candidates).Error; err != nil {
		t.Fatalf("listing candidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("candidate rows = %d, want 1", len(candidates))
	}

	var stored model.Response
	if err := db.Where("candidate_id = ?", candidates[0].ID).First(&stored).Error; err != nil {
		t.Fatalf("loading response: %v", err)
	}
	if stored.Score != 1 || stored.TestID != test.ID || stored.TimeTaken != 65 {
		t.Errorf("stored response = %+v", stored)
	}
	records, err := model.DecodeAnswerRecords(stored.Answers)
	if err != nil {
		t.Fatalf("decoding stored answers: %v", err)
	}
	if len(records) != 2 || !records[0].IsCorrect || records[1].IsCorrect {
		t.Errorf("stored records = %+v", records)
	}
}

func TestSubmitTestReusesCandidateAcrossSubmissions(t *testing.T) {
	db := openTestDB(t)
	creator := seedCreator(t, db)
	test := seedFrozenTest(t, db, creator.ID)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)

	submit := func(name string) *dto.SubmitTestResponse {
		t.Helper()
		resp, err := svc.SubmitTest(dto.SubmitTestRequest{
			TestID:    test.TestCode,
			Name:      name,
			Email:     "repeat@example.com",
			TimeTaken: 30,
			Answers: []dto.SubmittedAnswer{
				{QuestionID: "1", Selected: "a"},
				{QuestionID: "2", Selected: "b"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return resp
	}

	first := submit("Original Name")
	second := submit("Changed Name")

	if first.CandidateID != second.CandidateID {
		t.Errorf("candidate ids differ: %d vs %d", first.CandidateID, second.CandidateID)
	}
	// The first-seen name stays authoritative on reuse.
	if second.Name != "Original Name" {
		t.Errorf("name on reuse = %q, want Original Name", second.Name)
	}

	var candidateCount, responseCount int64
	db.Model(&model.Candidate{}).Count(&candidateCount)
	db.Model(&model.Response{}).Count(&responseCount)
	if candidateCount != 1 {
		t.Errorf("candidate rows = %d, want 1", candidateCount)
	}
	if responseCount != 2 {
		t.Errorf("response rows = %d, want 2", responseCount)
	}
}

func TestSubmitTestUnknownCode(t *testing.T) {
	db := openTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)

	_, err := svc.SubmitTest(dto.SubmitTestRequest{
		TestID:  "TEST-00000000",
		Name:    "Ada",
		Email:   "ada@example.com",
		Answers: []dto.SubmittedAnswer{},
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFindOrCreateCandidateLosesInsertRace(t *testing.T) {
	db := openTestDB(t)

	// A rival submission lands between this request's lookup and its insert,
	// so the insert hits the unique email index and the row is re-read.
	var raced bool
	err := db.Callback().Create().Before("gorm:create").Register("rival_submission", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*model.Candidate); !ok {
			return
		}
		raced = true
		rival := model.Candidate{Name: "First Submitter", Email: "race@example.com"}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error; err != nil {
			t.Errorf("inserting rival candidate: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("registering callback: %v", err)
	}

	got, err := findOrCreateCandidate(db, "race@example.com", "Second Submitter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !raced {
		t.Fatal("rival insert never fired")
	}
	if got.Name != "First Submitter" {
		t.Errorf("name = %q, want the rival's First Submitter", got.Name)
	}

	var count int64
	db.Model(&model.Candidate{}).Count(&count)
	if count != 1 {
		t.Errorf("candidate rows = %d, want 1", count)
	}
}

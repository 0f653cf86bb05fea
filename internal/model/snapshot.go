package model

import (
	"encoding/json"
)

// SnapshotCategory is the category provenance frozen into a question snapshot.
type SnapshotCategory struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Subcategory *string `json:"subcategory,omitempty"`
}

// QuestionSnapshot is one frozen question inside Test.QuestionsData. It is the
// historical source of truth for grading and display, independent of the live
// question bank.
type QuestionSnapshot struct {
	QuestionID uint             `json:"question_id"`
	Answer     string           `json:"answer"` // correct option key
	Options    OptionMap        `json:"options"`
	Question   string           `json:"question"`
	Category   SnapshotCategory `json:"category"`
	Difficulty string           `json:"difficulty"`
	UserID     uint             `json:"user_id"` // authoring user, provenance only
}

// AnswerRecord is one validated entry inside Response.Answers. QuestionID is
// kept as a string to tolerate numeric/string id mismatches from clients.
type AnswerRecord struct {
	QuestionID string `json:"questionId"`
	Selected   string `json:"selected"`
	Correct    string `json:"correct"`
	IsCorrect  bool   `json:"isCorrect"`
}

// EncodeSnapshots serializes a frozen question list for Test.QuestionsData.
func EncodeSnapshots(snapshots []QuestionSnapshot) (string, error) {
	b, err := json.Marshal(snapshots)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSnapshots parses Test.QuestionsData back into the frozen question
// list.
func DecodeSnapshots(data string) ([]QuestionSnapshot, error) {
	var snapshots []QuestionSnapshot
	if err := json.Unmarshal([]byte(data), &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// EncodeAnswerRecords serializes validated answers for Response.Answers.
func EncodeAnswerRecords(records []AnswerRecord) (string, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAnswerRecords parses Response.Answers back into validated answers.
func DecodeAnswerRecords(data string) ([]AnswerRecord, error) {
	var records []AnswerRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, err
	}
	return records, nil
}

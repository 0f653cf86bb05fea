package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{`"12"`, "12", false},
		{`12`, "12", false},
		{`"abc"`, "abc", false},
		{`0`, "0", false},
		{`true`, "", true},
		{`[1]`, "", true},
		{`{"id":1}`, "", true},
	}

	for _, tc := range tests {
		var id FlexID
		err := json.Unmarshal([]byte(tc.raw), &id)
		if tc.wantErr {
			if err == nil {
				t.Errorf("unmarshal %s: expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %s: %v", tc.raw, err)
			continue
		}
		if id.String() != tc.want {
			t.Errorf("unmarshal %s = %q, want %q", tc.raw, id, tc.want)
		}
	}
}

func TestFlexIDInSubmittedAnswer(t *testing.T) {
	var a SubmittedAnswer
	if err := json.Unmarshal([]byte(`{"questionId":7,"selected":"a"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.QuestionID.String() != "7" || a.Selected != "a" {
		t.Errorf("got %+v, want questionId 7 selected a", a)
	}
}

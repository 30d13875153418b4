package service

import (
	"errors"
	"testing"
)

func TestDecodeOrgAnswersBothDialects(t *testing.T) {
	raw := []byte(`[
		{"questionId": 1, "categoryId": 2, "score": 30},
		{"qid": 4, "cid": 7, "s": 50}
	]`)
	got, err := decodeOrgAnswers("survey_responses", raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 answers, got %d", len(got))
	}
	if got[0].QuestionID != 1 || got[0].CategoryID != 2 || got[0].Score != 30 {
		t.Errorf("legacy entry mis-decoded: %+v", got[0])
	}
	if got[1].QuestionID != 4 || got[1].CategoryID != 7 || got[1].Score != 50 {
		t.Errorf("short entry mis-decoded: %+v", got[1])
	}
}

func TestDecodeOrgAnswersDedupeKeepsLast(t *testing.T) {
	raw := []byte(`[
		{"qid": 3, "cid": 1, "s": 10},
		{"qid": 3, "cid": 1, "s": 40}
	]`)
	got, err := decodeOrgAnswers("survey_responses", raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 answer after dedupe, got %d", len(got))
	}
	if got[0].Score != 40 {
		t.Errorf("want last occurrence (40), got %v", got[0].Score)
	}
}

func TestDecodeOrgAnswersSkipsUnusableEntries(t *testing.T) {
	raw := []byte(`[
		{"cid": 1, "s": 10},
		{"qid": 2, "s": 10},
		{"qid": 3, "cid": 1, "s": "not-a-number"},
		{"qid": 4, "cid": 1, "s": "25.5"},
		{"qid": 5, "cid": 2, "s": null}
	]`)
	got, err := decodeOrgAnswers("survey_responses", raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want only the coercible entry, got %d: %+v", len(got), got)
	}
	if got[0].QuestionID != 4 || got[0].Score != 25.5 {
		t.Errorf("string score not coerced: %+v", got[0])
	}
}

func TestDecodeGrowthAnswers(t *testing.T) {
	raw := []byte(`[
		{"employeeId": 7, "score": 0.9},
		{"uid": 8, "s": null},
		{"uid": 7, "s": 0.5}
	]`)
	got, err := decodeGrowthAnswers("growth_responses", raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries after dedupe, got %d", len(got))
	}
	// user 7 deduped, last occurrence wins
	if got[0].UserID != 7 || got[0].Score == nil || *got[0].Score != 0.5 {
		t.Errorf("dedupe did not keep last occurrence: %+v", got[0])
	}
	// explicit null is the free-text placeholder, preserved
	if got[1].UserID != 8 || got[1].Score != nil {
		t.Errorf("placeholder entry mis-decoded: %+v", got[1])
	}
}

func TestDecodeCorruptArray(t *testing.T) {
	_, err := decodeOrgAnswers("survey_responses", []byte(`{"not":"an array"`))
	var ce *CorruptDataError
	if !errors.As(err, &ce) {
		t.Fatalf("want CorruptDataError, got %v", err)
	}

	_, err = decodeGrowthAnswers("growth_responses", []byte(`garbage`))
	if !errors.As(err, &ce) {
		t.Fatalf("want CorruptDataError, got %v", err)
	}
}

func TestDecodeEmptyIsNotAnError(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("[]")} {
		got, err := decodeOrgAnswers("survey_responses", raw)
		if err != nil {
			t.Fatalf("decode(%q) failed: %v", raw, err)
		}
		if len(got) != 0 {
			t.Errorf("decode(%q): want empty, got %+v", raw, got)
		}
	}
}

func TestEncodeRoundTripUsesShortDialect(t *testing.T) {
	in := []OrgAnswer{{QuestionID: 1, CategoryID: 2, Score: 30}}
	enc := encodeOrgAnswers(in)
	want := `[{"qid":1,"cid":2,"s":30}]`
	if string(enc) != want {
		t.Errorf("encode = %s, want %s", enc, want)
	}

	if string(encodeGrowthAnswers(nil)) != "[]" {
		t.Errorf("nil growth array must encode as [], got %s", encodeGrowthAnswers(nil))
	}
}

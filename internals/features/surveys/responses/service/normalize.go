// file: internals/features/surveys/responses/service/normalize.go
package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

/* =========================================================
   ANSWER NORMALIZER

   Persisted JSON arrays exist in two field-name dialects:
     organizational: {questionId,categoryId,score}  vs  {qid,cid,s}
     growth:         {employeeId,score}             vs  {uid,s}
   Decoding accepts both, coerces numeric strings best-effort, skips
   entries with missing or unusable fields, and dedupes (org: by
   question id, growth: by user id) keeping the LAST occurrence,
   matching filter-then-push upsert behavior. Encoding always writes
   the shortened dialect.
========================================================= */

// OrgAnswer is the canonical in-memory shape of one organizational
// single-choice answer.
type OrgAnswer struct {
	QuestionID int     `json:"qid"`
	CategoryID int     `json:"cid"`
	Score      float64 `json:"s"`
}

// GrowthAnswer is the canonical per-user entry inside a growth question row.
// A nil Score is the free-text placeholder: it counts for progress, never for
// scoring.
type GrowthAnswer struct {
	UserID int      `json:"uid"`
	Score  *float64 `json:"s"`
}

func decodeOrgAnswers(table string, raw []byte) ([]OrgAnswer, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &CorruptDataError{Table: table, Err: err}
	}

	out := make([]OrgAnswer, 0, len(entries))
	index := make(map[int]int, len(entries))
	for _, m := range entries {
		qid, ok := intField(m, "qid", "questionId")
		if !ok {
			continue
		}
		cid, ok := intField(m, "cid", "categoryId")
		if !ok {
			continue
		}
		score, present, valid := scoreField(m, "s", "score")
		if !present || !valid || score == nil {
			continue
		}
		a := OrgAnswer{QuestionID: qid, CategoryID: cid, Score: *score}
		if at, dup := index[qid]; dup {
			out[at] = a // keep last occurrence
			continue
		}
		index[qid] = len(out)
		out = append(out, a)
	}
	return out, nil
}

func decodeGrowthAnswers(table string, raw []byte) ([]GrowthAnswer, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &CorruptDataError{Table: table, Err: err}
	}

	out := make([]GrowthAnswer, 0, len(entries))
	index := make(map[int]int, len(entries))
	for _, m := range entries {
		uid, ok := intField(m, "uid", "employeeId")
		if !ok {
			continue
		}
		score, present, valid := scoreField(m, "s", "score")
		if !present || !valid {
			// an explicit null is a placeholder; a missing or garbage score
			// field makes the whole entry unusable
			continue
		}
		a := GrowthAnswer{UserID: uid, Score: score}
		if at, dup := index[uid]; dup {
			out[at] = a
			continue
		}
		index[uid] = len(out)
		out = append(out, a)
	}
	return out, nil
}

func encodeOrgAnswers(answers []OrgAnswer) []byte {
	if answers == nil {
		answers = []OrgAnswer{}
	}
	b, _ := json.Marshal(answers)
	return b
}

func encodeGrowthAnswers(answers []GrowthAnswer) []byte {
	if answers == nil {
		answers = []GrowthAnswer{}
	}
	b, _ := json.Marshal(answers)
	return b
}

/* ===============================
   Field pickers & coercion
=================================*/

func intField(m map[string]json.RawMessage, keys ...string) (int, bool) {
	for _, k := range keys {
		raw, ok := m[k]
		if !ok {
			continue
		}
		f, nonNull, valid := coerceNumber(raw)
		if !valid || !nonNull {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// scoreField returns (value, keyPresent, valid). value nil with valid=true
// means an explicit JSON null.
func scoreField(m map[string]json.RawMessage, keys ...string) (*float64, bool, bool) {
	for _, k := range keys {
		raw, ok := m[k]
		if !ok {
			continue
		}
		f, nonNull, valid := coerceNumber(raw)
		if !valid {
			return nil, true, false
		}
		if !nonNull {
			return nil, true, true
		}
		v := f
		return &v, true, true
	}
	return nil, false, false
}

// coerceNumber: (value, nonNull, valid). Accepts JSON numbers and numeric
// strings; everything else is invalid.
func coerceNumber(raw json.RawMessage) (float64, bool, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true, true
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if f, err := strconv.ParseFloat(inner, 64); err == nil {
			return f, true, true
		}
	}
	return 0, false, false
}

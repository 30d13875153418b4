package service

import (
	"strings"
	"testing"
)

// Two concurrent first writers must conflict on one seeded row instead of
// each inserting their own. That only holds if row creation is the
// conflict-guarded seed statement and every later save is an UPDATE.
func TestSeedStatementsAreConflictGuarded(t *testing.T) {
	org := orgSeedRowSQL("osid")
	if !strings.Contains(org, "ON CONFLICT (user_id, osid) DO NOTHING") {
		t.Errorf("org seed must upsert on the unique (user_id, survey) pair:\n%s", org)
	}
	if !strings.Contains(org, tableOrgResponses) {
		t.Errorf("org seed targets wrong table:\n%s", org)
	}

	legacy := orgSeedRowSQL("survey_id")
	if !strings.Contains(legacy, "ON CONFLICT (user_id, survey_id) DO NOTHING") {
		t.Errorf("org seed must follow the resolved column:\n%s", legacy)
	}

	growth := growthSeedRowSQL("gqid", "gsid", "cid")
	if !strings.Contains(growth, "ON CONFLICT (gqid, gsid) DO NOTHING") {
		t.Errorf("growth seed must upsert on the unique (question, survey) pair:\n%s", growth)
	}
	if !strings.Contains(growth, tableGrowthResponses) {
		t.Errorf("growth seed targets wrong table:\n%s", growth)
	}
}

// The save statements may only UPDATE: a remove for a user with no row (or
// any post-seed write) must never be able to insert.
func TestRowSavesAreUpdateOnly(t *testing.T) {
	for _, sql := range []string{orgUpdateRowSQL(), growthUpdateRowSQL()} {
		if !strings.HasPrefix(strings.TrimSpace(sql), "UPDATE ") {
			t.Errorf("row save must be an UPDATE, got:\n%s", sql)
		}
		if strings.Contains(sql, "INSERT") {
			t.Errorf("row save must not insert:\n%s", sql)
		}
	}
}

func TestResponseIndexDDLCoversKeyPairs(t *testing.T) {
	ddl := responseIndexDDL(
		map[string]string{colSurvey: "osid"},
		map[string]string{colSurvey: "osid", colQuestion: "qid"},
		map[string]string{colQuestion: "gqid", colSurvey: "gsid", colCategory: "cid"},
		map[string]string{colUser: "uid", colSurvey: "gsid", colQuestion: "gqid"},
	)
	if len(ddl) != 4 {
		t.Fatalf("want 4 index statements, got %d", len(ddl))
	}
	wants := []string{
		"ON survey_responses (user_id, osid)",
		"ON survey_freetext_responses (user_id, osid, qid)",
		"ON growth_responses (gqid, gsid)",
		"ON growth_freetext_responses (uid, gsid, gqid)",
	}
	for i, stmt := range ddl {
		if !strings.HasPrefix(stmt, "CREATE UNIQUE INDEX IF NOT EXISTS ") {
			t.Errorf("index %d must be unique and idempotent:\n%s", i, stmt)
		}
		if !strings.Contains(stmt, wants[i]) {
			t.Errorf("index %d must cover %q:\n%s", i, wants[i], stmt)
		}
	}
}

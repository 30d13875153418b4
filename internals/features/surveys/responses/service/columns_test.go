package service

import (
	"context"
	"errors"
	"testing"
)

type fakeColumnLister struct {
	columns map[string][]string
	err     error
	calls   int
}

func (f *fakeColumnLister) Columns(ctx context.Context, table string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.columns[table], nil
}

func TestResolvePrefersModernColumns(t *testing.T) {
	lister := &fakeColumnLister{columns: map[string][]string{
		tableGrowthResponses: {"id", "gqid", "gsid", "cid", "result", "total_score"},
	}}
	r := newColumnResolverWithLister(lister)

	cols, err := r.Resolve(context.Background(), tableGrowthResponses)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := map[string]string{colSurvey: "gsid", colQuestion: "gqid", colCategory: "cid"}
	for logical, physical := range want {
		if cols[logical] != physical {
			t.Errorf("%s resolved to %q, want %q", logical, cols[logical], physical)
		}
	}
}

func TestResolveFallsBackToLegacyColumns(t *testing.T) {
	lister := &fakeColumnLister{columns: map[string][]string{
		tableGrowthFreeText: {"id", "survey_id", "question_id", "user_id", "answer_text"},
	}}
	r := newColumnResolverWithLister(lister)

	cols, err := r.Resolve(context.Background(), tableGrowthFreeText)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := map[string]string{colSurvey: "survey_id", colQuestion: "question_id", colUser: "user_id"}
	for logical, physical := range want {
		if cols[logical] != physical {
			t.Errorf("%s resolved to %q, want %q", logical, cols[logical], physical)
		}
	}
}

func TestResolveMixedSchemaResolvesPerColumn(t *testing.T) {
	// A half-migrated table: survey column renamed, question column not yet.
	lister := &fakeColumnLister{columns: map[string][]string{
		tableOrgFreeText: {"id", "osid", "question_id", "user_id", "answer_text"},
	}}
	r := newColumnResolverWithLister(lister)

	cols, err := r.Resolve(context.Background(), tableOrgFreeText)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cols[colSurvey] != "osid" || cols[colQuestion] != "question_id" {
		t.Errorf("mixed schema mis-resolved: %v", cols)
	}
}

func TestResolveNeitherCandidateIsSchemaError(t *testing.T) {
	lister := &fakeColumnLister{columns: map[string][]string{
		tableOrgResponses: {"id", "user_id", "response", "response_rate"},
	}}
	r := newColumnResolverWithLister(lister)

	_, err := r.Resolve(context.Background(), tableOrgResponses)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want SchemaError, got %v", err)
	}
	if se.Table != tableOrgResponses || se.Logical != colSurvey {
		t.Errorf("SchemaError carries wrong context: %+v", se)
	}
}

func TestResolveUnregisteredTable(t *testing.T) {
	r := newColumnResolverWithLister(&fakeColumnLister{})
	_, err := r.Resolve(context.Background(), "mystery_table")
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want SchemaError, got %v", err)
	}
}

func TestResolveCachesSuccessOnly(t *testing.T) {
	lister := &fakeColumnLister{err: errors.New("connection refused")}
	r := newColumnResolverWithLister(lister)

	if _, err := r.Resolve(context.Background(), tableOrgResponses); err == nil {
		t.Fatal("want lookup error")
	}

	// Lookup recovers: the failed attempt must not have been cached.
	lister.err = nil
	lister.columns = map[string][]string{tableOrgResponses: {"id", "user_id", "osid", "response"}}
	cols, err := r.Resolve(context.Background(), tableOrgResponses)
	if err != nil {
		t.Fatalf("Resolve after recovery failed: %v", err)
	}
	if cols[colSurvey] != "osid" {
		t.Errorf("survey resolved to %q, want osid", cols[colSurvey])
	}

	// Third call is served from cache.
	before := lister.calls
	if _, err := r.Resolve(context.Background(), tableOrgResponses); err != nil {
		t.Fatalf("cached Resolve failed: %v", err)
	}
	if lister.calls != before {
		t.Errorf("cached table hit the lister again (%d calls, want %d)", lister.calls, before)
	}
}

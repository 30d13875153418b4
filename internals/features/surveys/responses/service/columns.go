// file: internals/features/surveys/responses/service/columns.go
package service

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

/* =========================================================
   SCHEMA COMPATIBILITY RESOLVER

   Two incompatible historical schemas hold the same logical data:
   legacy column names (survey_id, question_id, category) and the
   shortened set (osid/gsid, qid/gqid, cid). The resolver inspects
   information_schema once per table and hands the rest of the engine
   logical names only. The schema does not change at runtime, so the
   result is cached for the life of the process.
========================================================= */

const (
	tableOrgResponses    = "survey_responses"
	tableOrgFreeText     = "survey_freetext_responses"
	tableGrowthResponses = "growth_responses"
	tableGrowthFreeText  = "growth_freetext_responses"
)

// Logical field names used by the stores.
const (
	colSurvey   = "survey"
	colQuestion = "question"
	colUser     = "user"
	colCategory = "category"
)

type columnPair struct {
	Logical string
	Modern  string
	Legacy  string
}

var tableColumnPairs = map[string][]columnPair{
	tableOrgResponses: {
		{Logical: colSurvey, Modern: "osid", Legacy: "survey_id"},
	},
	tableOrgFreeText: {
		{Logical: colSurvey, Modern: "osid", Legacy: "survey_id"},
		{Logical: colQuestion, Modern: "qid", Legacy: "question_id"},
	},
	tableGrowthResponses: {
		{Logical: colSurvey, Modern: "gsid", Legacy: "survey_id"},
		{Logical: colQuestion, Modern: "gqid", Legacy: "question_id"},
		{Logical: colCategory, Modern: "cid", Legacy: "category"},
	},
	tableGrowthFreeText: {
		{Logical: colSurvey, Modern: "gsid", Legacy: "survey_id"},
		{Logical: colQuestion, Modern: "gqid", Legacy: "question_id"},
		{Logical: colUser, Modern: "uid", Legacy: "user_id"},
	},
}

// ColumnLister lists the physical columns of a table. Split out so resolver
// behavior is testable without a database.
type ColumnLister interface {
	Columns(ctx context.Context, table string) ([]string, error)
}

type gormColumnLister struct {
	db *gorm.DB
}

func (l gormColumnLister) Columns(ctx context.Context, table string) ([]string, error) {
	var cols []string
	err := l.db.WithContext(ctx).
		Raw(`SELECT column_name FROM information_schema.columns WHERE table_name = ?`, table).
		Scan(&cols).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return cols, nil
}

type ColumnResolver struct {
	lister ColumnLister
	cache  sync.Map // table name -> map[logical]physical
}

func NewColumnResolver(db *gorm.DB) *ColumnResolver {
	return &ColumnResolver{lister: gormColumnLister{db: db}}
}

func newColumnResolverWithLister(l ColumnLister) *ColumnResolver {
	return &ColumnResolver{lister: l}
}

// Resolve maps the table's logical fields to whichever physical column set is
// present, preferring the shortened names when their marker column exists.
// Neither candidate present → SchemaError.
func (r *ColumnResolver) Resolve(ctx context.Context, table string) (map[string]string, error) {
	if v, ok := r.cache.Load(table); ok {
		return v.(map[string]string), nil
	}

	pairs, ok := tableColumnPairs[table]
	if !ok {
		return nil, &SchemaError{Table: table, Logical: "(unregistered table)"}
	}

	cols, err := r.lister.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}

	resolved := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if _, ok := present[p.Modern]; ok {
			resolved[p.Logical] = p.Modern
			continue
		}
		if _, ok := present[p.Legacy]; ok {
			resolved[p.Logical] = p.Legacy
			continue
		}
		return nil, &SchemaError{Table: table, Logical: p.Logical}
	}

	// Do not cache a partial lookup failure; only a fully resolved table.
	r.cache.Store(table, resolved)
	return resolved, nil
}

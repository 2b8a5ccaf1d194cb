package sqlboiler

import (
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// dialect is the PostgreSQL dialect: double-quoted identifiers and $N placeholders.
var dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)

	return q
}

// NewDelete builds a DELETE statement from mods. Only From and Where mods apply.
func NewDelete(mods ...qm.QueryMod) *queries.Query {
	q := NewQuery(mods...)
	queries.SetDelete(q)

	return q
}

// Raw wraps a hand-written statement, used where no mod exists such as upserts.
func Raw(query string, args ...interface{}) *queries.Query {
	q := queries.Raw(query, args...)
	queries.SetDialect(q, &dialect)

	return q
}

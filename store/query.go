package store

import "strings"

// queryBuilder rewrites queries written with ? placeholders for a dialect.
type queryBuilder struct {
	dialect Dialect
}

// Build replaces each ? with the dialect's positional placeholder.
//
//	input:    SELECT * FROM runs WHERE level = ? LIMIT ?
//	sqlite:   SELECT * FROM runs WHERE level = ? LIMIT ?
//	postgres: SELECT * FROM runs WHERE level = $1 LIMIT $2
func (qb queryBuilder) Build(query string) string {
	if qb.dialect.Placeholder(1) == "?" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteString(qb.dialect.Placeholder(position))
			position++
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// BuildWithReturning is Build plus a RETURNING clause when the dialect
// cannot report the inserted id otherwise.
func (qb queryBuilder) BuildWithReturning(query, column string) string {
	q := qb.Build(query)
	if !qb.dialect.SupportsLastInsertID() {
		q += qb.dialect.ReturningClause(column)
	}
	return q
}

package rules_test

import (
	"strings"
	"testing"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
	"github.com/stretchr/testify/assert"
)

func refactorSQL(text string) string {
	return rules.Refactor(text, domain.LangSQL)
}

func TestSQL_KeywordsUppercased(t *testing.T) {
	out := refactorSQL("select id from users where active = 1")

	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "WHERE")
	assert.NotContains(t, out, "select")
}

func TestSQL_StringLiteralsProtected(t *testing.T) {
	out := refactorSQL("select name from t where note = 'select from where'")
	assert.Contains(t, out, "'select from where'")
}

func TestSQL_ClausesOnOwnLines(t *testing.T) {
	out := refactorSQL("select id from users where active = 1 order by id")

	lines := strings.Split(out, "\n")
	var starts []string
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) > 0 {
			starts = append(starts, fields[0])
		}
	}
	assert.Contains(t, starts, "FROM")
	assert.Contains(t, starts, "WHERE")
	assert.Contains(t, starts, "ORDER")
}

func TestSQL_ColumnsSplit(t *testing.T) {
	out := refactorSQL("select id, name, email from users")

	assert.Contains(t, out, "SELECT id,")
	assert.Contains(t, out, "       name,")
	assert.Contains(t, out, "       email")
}

func TestSQL_SingleColumnNotSplit(t *testing.T) {
	out := refactorSQL("select id from users")
	assert.Contains(t, out, "SELECT id")
	assert.NotContains(t, out, "SELECT id,")
}

func TestSQL_FunctionArgsNotSplitAsColumns(t *testing.T) {
	out := refactorSQL("select coalesce(a, b), c from t")
	assert.Contains(t, out, "coalesce(a, b),")
	assert.Contains(t, out, "       c")
}

func TestSQL_Idempotent(t *testing.T) {
	in := "select id, name from users where active = 1 order by id"
	once := refactorSQL(in)
	twice := refactorSQL(once)
	assert.Equal(t, once, twice)
}

func TestSQL_AggressiveAdvisory(t *testing.T) {
	in := "select count(*) from orders join users on orders.uid = users.id"

	plain := rules.RefactorWithOptions(in, domain.LangSQL, rules.Options{})
	assert.NotContains(t, plain, "-- Review:")

	aggressive := rules.RefactorWithOptions(in, domain.LangSQL, rules.Options{AggressiveSQL: true})
	assert.True(t, strings.HasPrefix(aggressive, "-- Review:"))
	assert.Equal(t, 1, strings.Count(aggressive, "-- Review:"))
}

func TestSQL_AggressiveSubquerySplit(t *testing.T) {
	in := "select id from t where uid in (select id from u)"
	out := rules.RefactorWithOptions(in, domain.LangSQL, rules.Options{AggressiveSQL: true})
	assert.Contains(t, out, "(\n    SELECT")
}

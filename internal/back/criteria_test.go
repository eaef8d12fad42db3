package back // nolint:testpackage

import (
	"math"
	"reflect"
	"testing"

	"gopkg.in/guregu/null.v4"
)

func TestCriteriaClauses(t *testing.T) {
	if clauses := (Criteria{}).Clauses(); len(clauses) != 0 {
		t.Errorf("expected no clause without parameters, got %v", clauses)
	}

	c := Criteria{
		Name:          null.StringFrom("ar"),
		Race:          RaceElf,
		After:         null.IntFrom(1000),
		Banned:        null.BoolFrom(false),
		MaxExperience: null.IntFrom(500),
		MinLevel:      null.IntFrom(2),
	}

	expected := []Clause{
		{Kind: ClauseContains, Column: "Name", Value: "ar"},
		{Kind: ClauseEqual, Column: "Race", Value: "ELF"},
		{Kind: ClauseRange, Column: "Birthday", Lower: int64(1000)},
		{Kind: ClauseEqual, Column: "Banned", Value: false},
		{Kind: ClauseRange, Column: "Experience", Upper: int64(500), Inclusive: true},
		{Kind: ClauseRange, Column: "Level", Lower: int64(2), Inclusive: true},
	}

	if actual := c.Clauses(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected %#v\ngot %#v", expected, actual)
	}
}

func TestClauseSqlizer(t *testing.T) {
	cases := []struct {
		clause   Clause
		expected string
		args     []interface{}
	}{
		{contains("Title", "King"), "instr(Title, ?) > 0", []interface{}{"King"}},
		{equal("Race", "ORC"), "Race = ?", []interface{}{"ORC"}},
		{between("Birthday", int64(5), nil, false), "(Birthday > ?)", []interface{}{int64(5)}},
		{between("Level", nil, int64(9), true), "(Level <= ?)", []interface{}{int64(9)}},
	}

	for k, v := range cases {
		sql, args, err := v.clause.Sqlizer().ToSql()
		if err != nil {
			t.Fatal(err)
		}

		if sql != v.expected || !reflect.DeepEqual(args, v.args) {
			t.Errorf("case #%d: expected %q %v, got %q %v", k, v.expected, v.args, sql, args)
		}
	}
}

func TestCriteriaQuery(t *testing.T) {
	cases := []struct {
		criteria      Criteria
		orderBy       []string
		limit, offset uint64
	}{
		{Criteria{}, []string{"ID ASC"}, 3, 0},
		{
			Criteria{Order: OrderByName, PageNumber: null.IntFrom(2), PageSize: null.IntFrom(5)},
			[]string{"Name ASC", "ID ASC"}, 5, 10,
		},
		{
			Criteria{Order: OrderByLevel, PageNumber: null.IntFrom(-1), PageSize: null.IntFrom(-4)},
			[]string{"Level ASC", "ID ASC"}, 0, 0,
		},
		{Criteria{PageNumber: null.IntFrom(4)}, []string{"ID ASC"}, 3, 12},
		{Criteria{Order: "bogus"}, []string{"ID ASC"}, 3, 0},
		{Criteria{PageNumber: null.IntFrom(6148914691236517206)}, []string{"ID ASC"}, 0, 0},
		{Criteria{PageNumber: null.IntFrom(2), PageSize: null.IntFrom(math.MaxInt64)}, []string{"ID ASC"}, 0, 0},
		{Criteria{PageNumber: null.IntFrom(1), PageSize: null.IntFrom(math.MaxInt64)}, []string{"ID ASC"}, math.MaxInt64, math.MaxInt64},
	}

	for k, v := range cases {
		q := v.criteria.Query()
		if !reflect.DeepEqual(q.OrderBy, v.orderBy) || q.Limit != v.limit || q.Offset != v.offset {
			t.Errorf(
				"case #%d: expected %v LIMIT %d OFFSET %d, got %v LIMIT %d OFFSET %d",
				k, v.orderBy, v.limit, v.offset, q.OrderBy, q.Limit, q.Offset,
			)
		}
	}
}

func TestParsePlayerOrder(t *testing.T) {
	for _, v := range []string{"ID", "NAME", "EXPERIENCE", "BIRTHDAY", "LEVEL"} {
		if _, err := ParsePlayerOrder(v); err != nil {
			t.Errorf("expected %s to be a valid order: %s", v, err)
		}
	}

	for _, v := range []string{"", "id", "TITLE"} {
		if _, err := ParsePlayerOrder(v); err == nil {
			t.Errorf("expected %q to be an invalid order", v)
		}
	}
}

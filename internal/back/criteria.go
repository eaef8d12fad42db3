package back

import (
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"gopkg.in/guregu/null.v4"
)

// DefaultPageSize is the number of players in a page when unspecified.
const DefaultPageSize = 3

// ClauseKind tells how a Clause constrains its column.
type ClauseKind int

// Possible values for ClauseKind.
const (
	// ClauseContains matches when Value is a case-sensitive substring of
	// the column.
	ClauseContains ClauseKind = iota
	// ClauseEqual matches when the column is equal to Value.
	ClauseEqual
	// ClauseRange matches when the column lies between Lower and Upper, a
	// nil bound is not checked.
	ClauseRange
)

// A Clause is a single constraint of a player search.
type Clause struct {
	Kind   ClauseKind
	Column string

	Value interface{} // ClauseContains, ClauseEqual

	Lower, Upper interface{} // ClauseRange
	Inclusive    bool        // ClauseRange
}

func contains(column string, v string) Clause {
	return Clause{Kind: ClauseContains, Column: column, Value: v}
}

func equal(column string, v interface{}) Clause {
	return Clause{Kind: ClauseEqual, Column: column, Value: v}
}

func between(column string, lower, upper interface{}, inclusive bool) Clause {
	return Clause{Kind: ClauseRange, Column: column, Lower: lower, Upper: upper, Inclusive: inclusive}
}

// Sqlizer returns the SQL predicate for the clause.
func (c Clause) Sqlizer() squirrel.Sqlizer {
	switch c.Kind {
	case ClauseContains:
		// instr is case-sensitive where LIKE is not, and needs no escaping.
		return squirrel.Expr(fmt.Sprintf("instr(%s, ?) > 0", c.Column), c.Value)
	case ClauseEqual:
		return squirrel.Eq{c.Column: c.Value}
	case ClauseRange:
		ret := squirrel.And{}
		if c.Lower != nil {
			if c.Inclusive {
				ret = append(ret, squirrel.GtOrEq{c.Column: c.Lower})
			} else {
				ret = append(ret, squirrel.Gt{c.Column: c.Lower})
			}
		}
		if c.Upper != nil {
			if c.Inclusive {
				ret = append(ret, squirrel.LtOrEq{c.Column: c.Upper})
			} else {
				ret = append(ret, squirrel.Lt{c.Column: c.Upper})
			}
		}
		return ret
	default:
		panic(fmt.Errorf("unexpected clause kind %d", c.Kind))
	}
}

// PlayerOrder is the closed set of keys a player search can be sorted by.
type PlayerOrder string

// Possible values for PlayerOrder.
const (
	OrderByID         PlayerOrder = "ID"
	OrderByName       PlayerOrder = "NAME"
	OrderByExperience PlayerOrder = "EXPERIENCE"
	OrderByBirthday   PlayerOrder = "BIRTHDAY"
	OrderByLevel      PlayerOrder = "LEVEL"
)

var playerOrderColumns = map[PlayerOrder]string{ // nolint:gochecknoglobals
	OrderByID:         "ID",
	OrderByName:       "Name",
	OrderByExperience: "Experience",
	OrderByBirthday:   "Birthday",
	OrderByLevel:      "Level",
}

func ParsePlayerOrder(str string) (PlayerOrder, error) {
	o := PlayerOrder(str)
	if _, ok := playerOrderColumns[o]; !ok {
		return "", fmt.Errorf("unknown order %q", str)
	}

	return o, nil
}

// Criteria are the optional parameters of a player search. Absent
// parameters do not constrain the search.
type Criteria struct {
	Name, Title null.String
	Race        Race
	Profession  Profession

	// Exclusive birthday bounds, in milliseconds since epoch.
	After, Before null.Int

	Banned null.Bool

	// Inclusive bounds.
	MinExperience, MaxExperience null.Int
	MinLevel, MaxLevel           null.Int

	Order                PlayerOrder
	PageNumber, PageSize null.Int
}

// Clauses returns one clause per parameter present in c.
func (c Criteria) Clauses() []Clause {
	var ret []Clause

	if c.Name.Valid {
		ret = append(ret, contains("Name", c.Name.String))
	}
	if c.Title.Valid {
		ret = append(ret, contains("Title", c.Title.String))
	}
	if c.Race != "" {
		ret = append(ret, equal("Race", string(c.Race)))
	}
	if c.Profession != "" {
		ret = append(ret, equal("Profession", string(c.Profession)))
	}
	if c.After.Valid {
		ret = append(ret, between("Birthday", c.After.Int64, nil, false))
	}
	if c.Before.Valid {
		ret = append(ret, between("Birthday", nil, c.Before.Int64, false))
	}
	if c.Banned.Valid {
		ret = append(ret, equal("Banned", c.Banned.Bool))
	}
	if c.MinExperience.Valid {
		ret = append(ret, between("Experience", c.MinExperience.Int64, nil, true))
	}
	if c.MaxExperience.Valid {
		ret = append(ret, between("Experience", nil, c.MaxExperience.Int64, true))
	}
	if c.MinLevel.Valid {
		ret = append(ret, between("Level", c.MinLevel.Int64, nil, true))
	}
	if c.MaxLevel.Valid {
		ret = append(ret, between("Level", nil, c.MaxLevel.Int64, true))
	}

	return ret
}

// Where returns the AND of all clauses of c, an empty AND matches all rows.
func (c Criteria) Where() squirrel.Sqlizer {
	clauses := c.Clauses()
	ret := make(squirrel.And, 0, len(clauses))
	for _, v := range clauses {
		ret = append(ret, v.Sqlizer())
	}

	return ret
}

// Query returns the filtered, ordered, and paginated query described by c.
func (c Criteria) Query() Query {
	order := c.Order
	column, ok := playerOrderColumns[order]
	if !ok {
		order, column = OrderByID, "ID"
	}

	orderBy := []string{column + " ASC"}
	if order != OrderByID {
		orderBy = append(orderBy, "ID ASC")
	}

	number := nonNegative(c.PageNumber, 0)
	size := nonNegative(c.PageSize, DefaultPageSize)

	// A page whose offset does not fit in an int64 is past any stored row.
	if size > 0 && number > math.MaxInt64/size {
		number, size = 0, 0
	}

	return Query{
		Where:   c.Where(),
		OrderBy: orderBy,
		Limit:   size,
		Offset:  number * size,
	}
}

func nonNegative(v null.Int, def uint64) uint64 {
	if !v.Valid {
		return def
	}

	if v.Int64 < 0 {
		return 0
	}

	return uint64(v.Int64)
}

// Query is a filtered, ordered, and paginated player search.
type Query struct {
	Where   squirrel.Sqlizer
	OrderBy []string
	Limit   uint64
	Offset  uint64
}

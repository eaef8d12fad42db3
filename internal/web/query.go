package web

import (
	"fmt"
	"net/url"
	"roster/internal/back"
	"roster/internal/util"
	"strconv"

	"gopkg.in/guregu/null.v4"
)

// parseCriteria reads the search parameters of a player listing. Absent
// parameters are left null, malformed ones are an ErrBadRequest.
func parseCriteria(q url.Values) (back.Criteria, error) {
	var (
		c    back.Criteria
		errs []error
	)

	parseIntSize := func(key string, bitSize int, dst *null.Int) {
		if !q.Has(key) {
			return
		}

		v, err := strconv.ParseInt(q.Get(key), 10, bitSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a %d-bit integer", key, bitSize))
			return
		}

		*dst = null.IntFrom(v)
	}
	parseInt := func(key string, dst *null.Int) {
		parseIntSize(key, 64, dst)
	}

	parseString := func(key string, dst *null.String) {
		if q.Has(key) {
			*dst = null.StringFrom(q.Get(key))
		}
	}

	parseString("name", &c.Name)
	parseString("title", &c.Title)

	if q.Has("race") {
		race, err := back.ParseRace(q.Get("race"))
		if err != nil {
			errs = append(errs, err)
		}
		c.Race = race
	}

	if q.Has("profession") {
		profession, err := back.ParseProfession(q.Get("profession"))
		if err != nil {
			errs = append(errs, err)
		}
		c.Profession = profession
	}

	parseInt("after", &c.After)
	parseInt("before", &c.Before)

	if q.Has("banned") {
		banned, err := strconv.ParseBool(q.Get("banned"))
		if err != nil {
			errs = append(errs, util.ErrPublic("banned must be a boolean"))
		} else {
			c.Banned = null.BoolFrom(banned)
		}
	}

	parseInt("minExperience", &c.MinExperience)
	parseInt("maxExperience", &c.MaxExperience)
	parseInt("minLevel", &c.MinLevel)
	parseInt("maxLevel", &c.MaxLevel)

	if q.Has("order") {
		order, err := back.ParsePlayerOrder(q.Get("order"))
		if err != nil {
			errs = append(errs, err)
		}
		c.Order = order
	}

	parseIntSize("pageNumber", 32, &c.PageNumber)
	parseIntSize("pageSize", 32, &c.PageSize)

	if len(errs) > 0 {
		return back.Criteria{}, fmt.Errorf("%w: %s", back.ErrBadRequest, util.ConcatErrors(errs))
	}

	return c, nil
}

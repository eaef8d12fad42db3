package back

import (
	"fmt"
	"roster/internal/util"
	"time"
	"unicode/utf8"
)

// Field constraints, lengths are in characters.
const (
	MaxNameLength  = 12
	MaxTitleLength = 30
	MaxExperience  = 10_000_000
)

// birthdayBounds returns the earliest and latest valid birthdays. The
// calendar bounds are fixed, only their offset follows the one in use at now.
func birthdayBounds(now time.Time) (time.Time, time.Time) {
	_, offset := now.Zone()
	loc := time.FixedZone("", offset)

	return time.Date(2000, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(3000, time.December, 31, 23, 59, 0, 0, loc)
}

// validate checks f is a complete and valid Player.
// All broken rules are reported in a single ValidationError.
func (f PlayerFields) validate(now time.Time) error {
	var errs []error

	switch {
	case !f.Name.Valid || f.Name.String == "":
		errs = append(errs, util.ErrPublic("name is required"))
	case utf8.RuneCountInString(f.Name.String) > MaxNameLength:
		errs = append(errs, util.ErrPublic(fmt.Sprintf(
			"name must be at most %d characters", MaxNameLength,
		)))
	}

	switch {
	case !f.Title.Valid:
		errs = append(errs, util.ErrPublic("title is required"))
	case utf8.RuneCountInString(f.Title.String) > MaxTitleLength:
		errs = append(errs, util.ErrPublic(fmt.Sprintf(
			"title must be at most %d characters", MaxTitleLength,
		)))
	}

	if !f.Race.IsValid() {
		errs = append(errs, util.ErrPublic("race is required"))
	}

	if !f.Profession.IsValid() {
		errs = append(errs, util.ErrPublic("profession is required"))
	}

	switch {
	case !f.Experience.Valid:
		errs = append(errs, util.ErrPublic("experience is required"))
	case f.Experience.Int64 < 0 || f.Experience.Int64 > MaxExperience:
		errs = append(errs, util.ErrPublic(fmt.Sprintf(
			"experience must be between 0 and %d", MaxExperience,
		)))
	}

	if err := validateBirthday(f.Birthday, now); err != nil {
		errs = append(errs, err)
	}

	if err := util.ConcatErrors(errs); err != nil {
		return ValidationError{Err: err}
	}

	return nil
}

func validateBirthday(birthday util.NullTimeAsMillis, now time.Time) error {
	if !birthday.Valid {
		return util.ErrPublic("birthday is required")
	}

	if birthday.Time.Millis() < 0 {
		return util.ErrPublic("birthday must not be before the epoch")
	}

	from, to := birthdayBounds(now)
	if t := birthday.Time.Time(); t.Before(from) || t.After(to) {
		return util.ErrPublic("birthday must be between the years 2000 and 3000")
	}

	return nil
}

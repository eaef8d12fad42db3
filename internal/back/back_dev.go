package back

import (
	"context"
	"roster/internal/util"
	"time"

	"gopkg.in/guregu/null.v4"
)

// LoadFixtures creates a small roster for quick testing during development.
func (b *Back) LoadFixtures(ctx context.Context) error {
	date := func(year int, month time.Month, day int) util.NullTimeAsMillis {
		return util.NewNullTimeAsMillis(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
	}

	players := []PlayerFields{
		{
			Name: null.StringFrom("Ninelle"), Title: null.StringFrom("Keeper of the Gate"),
			Race: RaceHuman, Profession: ProfessionSorcerer,
			Birthday: date(2010, time.October, 3), Experience: null.IntFrom(15573),
		},
		{
			Name: null.StringFrom("Torvald"), Title: null.StringFrom("Hammer of the Deep"),
			Race: RaceDwarf, Profession: ProfessionWarrior,
			Birthday: date(2005, time.March, 12), Experience: null.IntFrom(804_288),
		},
		{
			Name: null.StringFrom("Elandril"), Title: null.StringFrom(""),
			Race: RaceElf, Profession: ProfessionDruid,
			Birthday: date(2012, time.July, 21), Experience: null.IntFrom(49_000),
		},
		{
			Name: null.StringFrom("Grokk"), Title: null.StringFrom("Breaker of Walls"),
			Race: RaceOrc, Profession: ProfessionWarrior,
			Birthday: date(2007, time.January, 30), Experience: null.IntFrom(3_225_000),
			Banned: null.BoolFrom(true),
		},
		{
			Name: null.StringFrom("Pippa"), Title: null.StringFrom("Second Breakfast Enjoyer"),
			Race: RaceHobbit, Profession: ProfessionRogue,
			Birthday: date(2001, time.September, 22), Experience: null.IntFrom(1_200),
		},
		{
			Name: null.StringFrom("Ulmog"), Title: null.StringFrom("Under the Bridge"),
			Race: RaceTroll, Profession: ProfessionCleric,
			Birthday: date(2015, time.May, 5), Experience: null.IntFrom(95_100),
			Banned: null.BoolFrom(true),
		},
		{
			Name: null.StringFrom("Aldric"), Title: null.StringFrom("Shield of the Dawn"),
			Race: RaceHuman, Profession: ProfessionPaladin,
			Birthday: date(2003, time.December, 1), Experience: null.IntFrom(9_999_999),
		},
		{
			Name: null.StringFrom("Morgul"), Title: null.StringFrom("The Ringwraith"),
			Race: RaceHuman, Profession: ProfessionNazgul,
			Birthday: date(2000, time.February, 29), Experience: null.IntFrom(10_000_000),
		},
		{
			Name: null.StringFrom("Brannoc"), Title: null.StringFrom("Stormcaller"),
			Race: RaceGiant, Profession: ProfessionWarlock,
			Birthday: date(2020, time.August, 14), Experience: null.IntFrom(0),
		},
	}

	for _, v := range players {
		if _, err := b.CreatePlayer(ctx, v); err != nil {
			return err
		}
	}

	return nil
}

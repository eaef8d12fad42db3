package back

import (
	"roster/internal/util"

	"gopkg.in/guregu/null.v4"
)

// A Player is a game character record as it is stored.
// Level and UntilNextLevel are derived from Experience on every save.
type Player struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Title          string            `json:"title"`
	Race           Race              `json:"race"`
	Profession     Profession        `json:"profession"`
	Birthday       util.TimeAsMillis `json:"birthday"`
	Experience     int               `json:"experience"`
	Level          int               `json:"level"`
	UntilNextLevel int               `json:"untilNextLevel"`
	Banned         bool              `json:"banned"`
}

// PlayerFields holds the client-supplied fields of a Player, any of which can
// be absent. It is both the creation payload and the partial update patch.
// Client-supplied id and derived fields are never read.
type PlayerFields struct {
	Name       null.String           `json:"name"`
	Title      null.String           `json:"title"`
	Race       Race                  `json:"race"`
	Profession Profession            `json:"profession"`
	Birthday   util.NullTimeAsMillis `json:"birthday"`
	Experience null.Int              `json:"experience"`
	Banned     null.Bool             `json:"banned"`
}

// IsEmpty returns true if no mutable field is present.
func (f PlayerFields) IsEmpty() bool {
	return !f.Name.Valid &&
		!f.Title.Valid &&
		f.Race == "" &&
		f.Profession == "" &&
		!f.Birthday.Valid &&
		!f.Experience.Valid &&
		!f.Banned.Valid
}

// Merge returns a copy of f where every field present in patch replaces the
// one in f.
func (f PlayerFields) Merge(patch PlayerFields) PlayerFields {
	ret := f

	if patch.Name.Valid {
		ret.Name = patch.Name
	}
	if patch.Title.Valid {
		ret.Title = patch.Title
	}
	if patch.Race != "" {
		ret.Race = patch.Race
	}
	if patch.Profession != "" {
		ret.Profession = patch.Profession
	}
	if patch.Birthday.Valid {
		ret.Birthday = patch.Birthday
	}
	if patch.Experience.Valid {
		ret.Experience = patch.Experience
	}
	if patch.Banned.Valid {
		ret.Banned = patch.Banned
	}

	return ret
}

// Fields returns the mutable fields of a stored Player, all present.
func (p Player) Fields() PlayerFields {
	return PlayerFields{
		Name:       null.StringFrom(p.Name),
		Title:      null.StringFrom(p.Title),
		Race:       p.Race,
		Profession: p.Profession,
		Birthday:   util.NullTimeAsMillis{Time: p.Birthday, Valid: true},
		Experience: null.IntFrom(int64(p.Experience)),
		Banned:     null.BoolFrom(p.Banned),
	}
}

// leveledPlayer builds the Player to store from validated fields, computing
// its derived fields.
func (f PlayerFields) leveledPlayer(id int64) Player {
	p := Player{
		ID:         id,
		Name:       f.Name.String,
		Title:      f.Title.String,
		Race:       f.Race,
		Profession: f.Profession,
		Birthday:   f.Birthday.Time,
		Experience: int(f.Experience.Int64),
		Banned:     f.Banned.Bool,
	}
	p.Level, p.UntilNextLevel = ComputeLevel(p.Experience)

	return p
}

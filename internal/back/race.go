package back

import "fmt"

// Race is the closed set of races a Player can belong to.
type Race string

// Possible values for Race.
const (
	RaceHuman  Race = "HUMAN"
	RaceDwarf  Race = "DWARF"
	RaceElf    Race = "ELF"
	RaceGiant  Race = "GIANT"
	RaceOrc    Race = "ORC"
	RaceTroll  Race = "TROLL"
	RaceHobbit Race = "HOBBIT"
)

func (r Race) IsValid() bool {
	switch r {
	case RaceHuman, RaceDwarf, RaceElf, RaceGiant, RaceOrc, RaceTroll, RaceHobbit:
		return true
	}

	return false
}

func ParseRace(str string) (Race, error) {
	r := Race(str)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown race %q", str)
	}

	return r, nil
}

func (r *Race) UnmarshalText(text []byte) (err error) {
	*r, err = ParseRace(string(text))
	return err
}

// Profession is the closed set of professions a Player can have.
type Profession string

// Possible values for Profession.
const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
)

func (p Profession) IsValid() bool {
	switch p {
	case ProfessionWarrior, ProfessionRogue, ProfessionSorcerer, ProfessionCleric,
		ProfessionPaladin, ProfessionNazgul, ProfessionWarlock, ProfessionDruid:
		return true
	}

	return false
}

func ParseProfession(str string) (Profession, error) {
	p := Profession(str)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown profession %q", str)
	}

	return p, nil
}

func (p *Profession) UnmarshalText(text []byte) (err error) {
	*p, err = ParseProfession(string(text))
	return err
}

package back

import (
	"context"
	"database/sql"
	"errors"
	"roster/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Store persists players. Implementations must be safe for concurrent use.
type Store interface {
	// FindPlayers returns the page of players matching q, never nil.
	FindPlayers(ctx context.Context, q Query) ([]Player, error)
	// CountPlayers returns the number of players matching where.
	CountPlayers(ctx context.Context, where squirrel.Sqlizer) (int64, error)
	// GetPlayer returns ErrNotFound if no player has the given ID.
	GetPlayer(ctx context.Context, id int64) (Player, error)
	// SavePlayer inserts the player if it has no ID yet and overwrites it
	// otherwise. The stored player is returned.
	SavePlayer(ctx context.Context, p Player) (Player, error)
	// DeletePlayer returns false if there was nothing to delete.
	DeletePlayer(ctx context.Context, id int64) (bool, error)
}

// SQLStore is a Store over a SQL database holding a Player table.
type SQLStore struct {
	db *sqlx.DB
}

func OpenSQLStore(sqlDriver string, sqlDSN string) (*SQLStore, error) {
	// Why even bother converting names? A single greppable string across all
	// your source code is better than any odd conversion scheme you could ever
	// come up with.
	// HACK: This is global but putting this in init() makes test ugly.
	// As only the store relies on the DB, this seems like an okay-ish place.
	sqlx.NameMapper = func(v string) string { return v }

	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, err
	}

	// SQLite does not like concurrent writers.
	db.SetMaxOpenConns(1)

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) transaction(ctx context.Context, cb util.TransactionCallback) error {
	return util.Transaction(ctx, s.db, cb)
}

func (s *SQLStore) FindPlayers(ctx context.Context, q Query) ([]Player, error) {
	query, args, err := squirrel.Select("*").
		From("Player").
		Where(q.Where).
		OrderBy(q.OrderBy...).
		Limit(q.Limit).
		Offset(q.Offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	ret := []Player{}
	if err := s.transaction(ctx, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &ret, query, args...)
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func (s *SQLStore) CountPlayers(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From("Player").
		Where(where).
		ToSql()
	if err != nil {
		return 0, err
	}

	var ret int64
	if err := s.transaction(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &ret, query, args...)
	}); err != nil {
		return 0, err
	}

	return ret, nil
}

func (s *SQLStore) GetPlayer(ctx context.Context, id int64) (Player, error) {
	var ret Player
	if err := s.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		ret, err = getPlayerByID(ctx, tx, id)
		return err
	}); err != nil {
		return Player{}, err
	}

	return ret, nil
}

func getPlayerByID(ctx context.Context, tx *sqlx.Tx, id int64) (Player, error) {
	var ret Player
	query := `SELECT * FROM Player WHERE Player.ID = ? LIMIT 1`
	if err := tx.GetContext(ctx, &ret, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, ErrNotFound
		}
		return Player{}, err
	}

	return ret, nil
}

func (s *SQLStore) SavePlayer(ctx context.Context, p Player) (Player, error) {
	if err := s.transaction(ctx, func(tx *sqlx.Tx) error {
		if p.ID == 0 {
			return p.insert(ctx, tx)
		}

		return p.upsert(ctx, tx)
	}); err != nil {
		return Player{}, err
	}

	return p, nil
}

func (p *Player) columns() squirrel.Eq {
	return squirrel.Eq{
		"Name":           p.Name,
		"Title":          p.Title,
		"Race":           string(p.Race),
		"Profession":     string(p.Profession),
		"Birthday":       p.Birthday,
		"Experience":     p.Experience,
		"Level":          p.Level,
		"UntilNextLevel": p.UntilNextLevel,
		"Banned":         p.Banned,
	}
}

func (p *Player) insert(ctx context.Context, tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Player").SetMap(p.columns()).ToSql()
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	p.ID, err = res.LastInsertId()
	return err
}

// upsert writes p under its own ID, recreating it if it was deleted in the
// meantime.
func (p *Player) upsert(ctx context.Context, tx *sqlx.Tx) error {
	cols := p.columns()
	cols["ID"] = p.ID

	query, args, err := squirrel.Insert("Player").SetMap(cols).Suffix(`
        ON CONFLICT(ID) DO UPDATE SET
            Name = excluded.Name,
            Title = excluded.Title,
            Race = excluded.Race,
            Profession = excluded.Profession,
            Birthday = excluded.Birthday,
            Experience = excluded.Experience,
            Level = excluded.Level,
            UntilNextLevel = excluded.UntilNextLevel,
            Banned = excluded.Banned`,
	).ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	var found bool
	if err := s.transaction(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM Player WHERE Player.ID = ?`, id)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		found = n > 0
		return err
	}); err != nil {
		return false, err
	}

	return found, nil
}

package back

import (
	"context"

	"gopkg.in/guregu/null.v4"
)

// ListPlayers returns the page of players matching c.
func (b *Back) ListPlayers(ctx context.Context, c Criteria) ([]Player, error) {
	return b.store.FindPlayers(ctx, c.Query())
}

// CountPlayers returns the total number of players matching c, pagination
// and order are ignored.
func (b *Back) CountPlayers(ctx context.Context, c Criteria) (int64, error) {
	return b.store.CountPlayers(ctx, c.Where())
}

func (b *Back) GetPlayer(ctx context.Context, id int64) (Player, error) {
	if err := checkPlayerID(id); err != nil {
		return Player{}, err
	}

	return b.store.GetPlayer(ctx, id)
}

// CreatePlayer validates and stores a new Player, Banned defaults to false.
func (b *Back) CreatePlayer(ctx context.Context, fields PlayerFields) (Player, error) {
	if !fields.Banned.Valid {
		fields.Banned = null.BoolFrom(false)
	}

	if err := fields.validate(b.now()); err != nil {
		return Player{}, err
	}

	return b.store.SavePlayer(ctx, fields.leveledPlayer(0))
}

// UpdatePlayer overwrites the fields of an existing Player with the ones
// present in patch. The resulting Player is validated and leveled as a whole.
// An empty patch returns the stored Player untouched.
func (b *Back) UpdatePlayer(ctx context.Context, id int64, patch PlayerFields) (Player, error) {
	if err := checkPlayerID(id); err != nil {
		return Player{}, err
	}

	existing, err := b.store.GetPlayer(ctx, id)
	if err != nil {
		return Player{}, err
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	merged := existing.Fields().Merge(patch)
	if err := merged.validate(b.now()); err != nil {
		return Player{}, err
	}

	return b.store.SavePlayer(ctx, merged.leveledPlayer(existing.ID))
}

// DeletePlayer returns false if there was no Player to delete.
func (b *Back) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	if err := checkPlayerID(id); err != nil {
		return false, err
	}

	return b.store.DeletePlayer(ctx, id)
}

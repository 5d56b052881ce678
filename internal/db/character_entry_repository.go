package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/invfacade/internal/model"
)

// CharacterEntryRepository управляет списком зарегистрированных персонажей.
type CharacterEntryRepository struct {
	pool *pgxpool.Pool
}

// NewCharacterEntryRepository создаёт новый CharacterEntryRepository.
func NewCharacterEntryRepository(pool *pgxpool.Pool) *CharacterEntryRepository {
	return &CharacterEntryRepository{pool: pool}
}

// List возвращает всех персонажей в порядке регистрации.
func (r *CharacterEntryRepository) List(ctx context.Context) ([]model.CharacterEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT content_id, lodestone_id, name, server
		 FROM character_entries
		 ORDER BY created_at, content_id`)
	if err != nil {
		return nil, fmt.Errorf("querying character entries: %w", err)
	}
	defer rows.Close()

	var entries []model.CharacterEntry
	for rows.Next() {
		var e model.CharacterEntry
		if err := rows.Scan(&e.ContentID, &e.LodestoneID, &e.Character.Name, &e.Character.Server); err != nil {
			return nil, fmt.Errorf("scanning character entry: %w", err)
		}
		e.Character.ID = e.LodestoneID
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating character entries: %w", err)
	}
	return entries, nil
}

// Upsert сохраняет персонажа; повторная регистрация обновляет имя и сервер.
func (r *CharacterEntryRepository) Upsert(ctx context.Context, e model.CharacterEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO character_entries (content_id, lodestone_id, name, server)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (content_id) DO UPDATE
		 SET lodestone_id = EXCLUDED.lodestone_id,
		     name = EXCLUDED.name,
		     server = EXCLUDED.server`,
		e.ContentID, e.LodestoneID, e.Character.Name, e.Character.Server,
	)
	if err != nil {
		return fmt.Errorf("upserting character entry %q: %w", e.ContentID, err)
	}
	return nil
}

// Delete удаляет персонажа по content id.
func (r *CharacterEntryRepository) Delete(ctx context.Context, contentID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM character_entries WHERE content_id = $1`, contentID)
	if err != nil {
		return fmt.Errorf("deleting character entry %q: %w", contentID, err)
	}
	return nil
}

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/invfacade/internal/model"
)

// SnapshotRepository хранит последний снимок инвентаря аккаунта (JSONB).
type SnapshotRepository struct {
	pool      *pgxpool.Pool
	accountID string
}

// NewSnapshotRepository создаёт репозиторий для одного аккаунта.
func NewSnapshotRepository(pool *pgxpool.Pool, accountID string) *SnapshotRepository {
	return &SnapshotRepository{pool: pool, accountID: accountID}
}

// Load возвращает сохранённый снимок.
// Возвращает nil, nil если снимка ещё нет.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.UserInventory, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM inventory_snapshots WHERE account_id = $1`, r.accountID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying snapshot for %q: %w", r.accountID, err)
	}

	inv := model.NewUserInventory()
	if err := json.Unmarshal(payload, inv); err != nil {
		return nil, fmt.Errorf("decoding snapshot for %q: %w", r.accountID, err)
	}
	if inv.Items == nil {
		inv.Items = make(map[string]map[string][]model.InventoryItem)
	}
	return inv, nil
}

// Save перезаписывает снимок (UPSERT).
func (r *SnapshotRepository) Save(ctx context.Context, inv *model.UserInventory) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encoding snapshot for %q: %w", r.accountID, err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO inventory_snapshots (account_id, content_id, payload, last_updated, saved_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (account_id) DO UPDATE
		 SET content_id = EXCLUDED.content_id,
		     payload = EXCLUDED.payload,
		     last_updated = EXCLUDED.last_updated,
		     saved_at = NOW()`,
		r.accountID, inv.ContentID, payload, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot for %q: %w", r.accountID, err)
	}
	return nil
}

// Delete удаляет снимок. Отсутствие снимка не ошибка.
func (r *SnapshotRepository) Delete(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM inventory_snapshots WHERE account_id = $1`, r.accountID,
	)
	if err != nil {
		return fmt.Errorf("deleting snapshot for %q: %w", r.accountID, err)
	}
	return nil
}

// README: Station distance overrides backed by PostgreSQL.
package fare

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads the station_distances table. It is only consulted at boot.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadDistances returns every row of station_distances ordered for stable
// station listing.
func (s *Store) LoadDistances(ctx context.Context) ([]DistanceRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT from_station, to_station, km
		FROM station_distances
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("fare: query station_distances: %w", err)
	}
	defer rows.Close()

	var out []DistanceRow
	for rows.Next() {
		var r DistanceRow
		if err := rows.Scan(&r.From, &r.To, &r.Km); err != nil {
			return nil, fmt.Errorf("fare: scan station_distances: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fare: read station_distances: %w", err)
	}
	return out, nil
}

// Apply merges the stored distances over base.
func (s *Store) Apply(ctx context.Context, base Tables) (Tables, error) {
	rows, err := s.LoadDistances(ctx)
	if err != nil {
		return Tables{}, err
	}
	return base.WithDistances(rows)
}

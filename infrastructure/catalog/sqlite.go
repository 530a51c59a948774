package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.CatalogRepository = (*SQLiteRepository)(nil)

const createBoardsTable = `
CREATE TABLE IF NOT EXISTS boards (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  spec_json TEXT NOT NULL
);`

const createComponentsTable = `
CREATE TABLE IF NOT EXISTS components (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  spec_json TEXT NOT NULL
);`

// SQLiteRepository is a CatalogRepository backed by SQLite. Records are
// stored as JSON documents alongside their id and name columns; the id
// column serves exact lookups and the name column feeds fuzzy matching.
// Catalogs are small (hundreds of records), so fuzzy matching scans the
// name column in memory rather than pushing similarity into SQL.
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository opens (creating if needed) the catalog database at
// path and ensures the schema exists. Use ":memory:" for an ephemeral
// catalog in tests.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	for _, stmt := range []string{createBoardsTable, createComponentsTable} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create catalog schema: %w", err)
		}
	}
	return &SQLiteRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error { return r.db.Close() }

// SaveBoard inserts or replaces a board record.
func (r *SQLiteRepository) SaveBoard(ctx context.Context, board domain.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("encode board %q: %w", board.ID, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO boards (id, name, spec_json) VALUES (?, ?, ?)`,
		board.ID, board.Name, string(data))
	if err != nil {
		return fmt.Errorf("save board %q: %w", board.ID, err)
	}
	return nil
}

// SaveComponent inserts or replaces a component record.
func (r *SQLiteRepository) SaveComponent(ctx context.Context, component domain.Component) error {
	data, err := json.Marshal(component)
	if err != nil {
		return fmt.Errorf("encode component %q: %w", component.ID, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO components (id, name, spec_json) VALUES (?, ?, ?)`,
		component.ID, component.Name, string(data))
	if err != nil {
		return fmt.Errorf("save component %q: %w", component.ID, err)
	}
	return nil
}

// GetBoard resolves ref to a board: exact ID column match first, then
// fuzzy name match over all rows. Returns an error wrapping
// domain.ErrBoardNotFound when nothing matches.
func (r *SQLiteRepository) GetBoard(ctx context.Context, ref string) (domain.Board, error) {
	var board domain.Board

	found, err := r.getByID(ctx, "boards", ref, &board)
	if err != nil {
		return domain.Board{}, err
	}
	if found {
		return board, nil
	}

	rows, err := r.listNames(ctx, "boards")
	if err != nil {
		return domain.Board{}, err
	}

	candidates := make([]candidate, len(rows))
	for i, row := range rows {
		candidates[i] = candidate{name: row.Name, index: i}
	}
	i, ok := bestNameMatch(ref, candidates)
	if !ok {
		return domain.Board{}, domain.NewBoardNotFound(ref)
	}

	if err := json.Unmarshal([]byte(rows[i].SpecJSON), &board); err != nil {
		return domain.Board{}, fmt.Errorf("decode board %q: %w", rows[i].ID, err)
	}
	return board, nil
}

// GetComponent resolves ref to a component: exact ID column match first,
// then fuzzy name match over all rows. Returns an error wrapping
// domain.ErrComponentNotFound when nothing matches.
func (r *SQLiteRepository) GetComponent(ctx context.Context, ref string) (domain.Component, error) {
	var component domain.Component

	found, err := r.getByID(ctx, "components", ref, &component)
	if err != nil {
		return domain.Component{}, err
	}
	if found {
		return component, nil
	}

	rows, err := r.listNames(ctx, "components")
	if err != nil {
		return domain.Component{}, err
	}

	candidates := make([]candidate, len(rows))
	for i, row := range rows {
		candidates[i] = candidate{name: row.Name, index: i}
	}
	i, ok := bestNameMatch(ref, candidates)
	if !ok {
		return domain.Component{}, domain.NewComponentNotFound(ref)
	}

	if err := json.Unmarshal([]byte(rows[i].SpecJSON), &component); err != nil {
		return domain.Component{}, fmt.Errorf("decode component %q: %w", rows[i].ID, err)
	}
	return component, nil
}

// catalogRow is the subset of columns needed for fuzzy matching.
type catalogRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	SpecJSON string `db:"spec_json"`
}

// getByID fetches one record's JSON document by exact ID and decodes it
// into dst. Returns false without error on no match.
func (r *SQLiteRepository) getByID(ctx context.Context, table, id string, dst any) (bool, error) {
	var specJSON string
	query := fmt.Sprintf(`SELECT spec_json FROM %s WHERE id = ?`, table)
	err := r.db.GetContext(ctx, &specJSON, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query %s by id: %w", table, err)
	}
	if err := json.Unmarshal([]byte(specJSON), dst); err != nil {
		return false, fmt.Errorf("decode %s record %q: %w", table, id, err)
	}
	return true, nil
}

// listNames loads all rows of a table ordered by id for deterministic
// fuzzy matching.
func (r *SQLiteRepository) listNames(ctx context.Context, table string) ([]catalogRow, error) {
	var rows []catalogRow
	query := fmt.Sprintf(`SELECT id, name, spec_json FROM %s ORDER BY id`, table)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return rows, nil
}

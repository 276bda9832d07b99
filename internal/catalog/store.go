// Package catalog is the SQL-backed collection served by pokeserve.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"pokebrowse/internal/domain"
)

// Supported database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrNotFound is returned when no record has the requested id
var ErrNotFound = errors.New("pokemon not found")

const table = "pokemons"

const columns = "id, name, base_experience, height, weight, image_url"

var schemas = map[string]string{
	DriverSQLite: `
CREATE TABLE IF NOT EXISTS pokemons (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT,
	base_experience INTEGER,
	height          INTEGER,
	weight          INTEGER,
	image_url       TEXT
)`,
	DriverMySQL: `
CREATE TABLE IF NOT EXISTS pokemons (
	id              INT AUTO_INCREMENT PRIMARY KEY,
	name            VARCHAR(100) NULL,
	base_experience INT NULL,
	height          INT NULL,
	weight          INT NULL,
	image_url       VARCHAR(200) NULL
)`,
}

// Open connects to the database and checks it is reachable
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if _, ok := schemas[driver]; !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// A single writer avoids SQLITE_BUSY during seeding
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// Store reads and seeds the pokemons table
type Store struct {
	db     *sql.DB
	driver string
}

// New wraps an open database. driver selects the schema dialect.
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Migrate creates the table when it does not exist yet
func (s *Store) Migrate(ctx context.Context) error {
	ddl, ok := schemas[s.driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", s.driver)
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create %s table: %w", table, err)
	}
	return nil
}

// List returns one page of records matching p
func (s *Store) List(ctx context.Context, p ListParams) (ListResult, error) {
	p = p.normalized()
	where, args := p.where()

	var total int
	countSQL := "SELECT COUNT(*) FROM " + table + where
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return ListResult{}, fmt.Errorf("count %s: %w", table, err)
	}

	selectSQL := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s, id ASC LIMIT ? OFFSET ?",
		columns, table, where, p.Sort, strings.ToUpper(string(p.Order)))
	rows, err := s.db.QueryContext(ctx, selectSQL, append(args, p.PerPage, p.Offset())...)
	if err != nil {
		return ListResult{}, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var items []domain.Pokemon
	for rows.Next() {
		pk, err := scanPokemon(rows)
		if err != nil {
			return ListResult{}, err
		}
		items = append(items, pk)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, fmt.Errorf("list %s: %w", table, err)
	}

	return ListResult{
		Items:      items,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: total,
		TotalPages: TotalPages(total, p.PerPage),
		Sort:       p.Sort,
		Order:      p.Order,
	}, nil
}

// Get returns the record with the given id
func (s *Store) Get(ctx context.Context, id int) (domain.Pokemon, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM "+table+" WHERE id = ?", id)
	pk, err := scanPokemon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pokemon{}, ErrNotFound
	}
	return pk, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPokemon(sc scanner) (domain.Pokemon, error) {
	var (
		p                              domain.Pokemon
		name, image                    sql.NullString
		baseExperience, height, weight sql.NullInt64
	)
	if err := sc.Scan(&p.ID, &name, &baseExperience, &height, &weight, &image); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan %s: %w", table, err)
	}
	p.Name = name.String
	p.ImageURL = image.String
	p.BaseExperience = nullableInt(baseExperience)
	p.Height = nullableInt(height)
	p.Weight = nullableInt(weight)
	return p, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	return domain.IntPtr(int(v.Int64))
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

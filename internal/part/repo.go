// Package part provides the repository interface and PostgreSQL implementation
// for managing electronic parts.
package part

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("part not found")
)

// Filter narrows List results. Search is a case-insensitive substring match on
// name, part number, or manufacturer; Category is an exact match. Both are
// ANDed when present. Empty strings disable the predicate.
type Filter struct {
	Search   string
	Category string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]Part, error)
	GetByID(ctx context.Context, id int) (*Part, error)
	Create(ctx context.Context, p *Part) error
	Update(ctx context.Context, p *Part) error
	Delete(ctx context.Context, id int) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const partColumns = `id, part_number, name, description, manufacturer, category,
	quantity, unit_price::text, location, datasheet_url, specifications,
	created_at, updated_at`

func scanPart(row pgx.Row) (*Part, error) {
	var p Part
	var price string
	if err := row.Scan(&p.ID, &p.PartNumber, &p.Name, &p.Description, &p.Manufacturer,
		&p.Category, &p.Quantity, &price, &p.Location, &p.DatasheetURL,
		&p.Specifications, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.UnitPrice = d
	return &p, nil
}

// likeEscaper neutralizes LIKE metacharacters so the search term always
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Part, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// the search term is matched verbatim, whitespace included
	search := escapeLike(f.Search)

	rows, err := r.db.Query(ctx, `
		SELECT `+partColumns+`
		FROM parts
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR part_number ILIKE '%'||$1||'%' OR manufacturer ILIKE '%'||$1||'%')
		  AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC
	`, search, f.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// empty result serializes as [], never null
	out := []Part{}
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int) (*Part, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanPart(r.db.QueryRow(ctx, `
		SELECT `+partColumns+`
		FROM parts WHERE id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Part) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.Specifications == nil {
		p.Specifications = map[string]any{}
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO parts (part_number, name, description, manufacturer, category,
			quantity, unit_price, location, datasheet_url, specifications, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`, p.PartNumber, p.Name, p.Description, p.Manufacturer, p.Category,
		p.Quantity, p.UnitPrice.String(), p.Location, p.DatasheetURL, p.Specifications).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update replaces every mutable column; omitted request fields arrive here
// already coerced to their defaults.
func (r *PGRepo) Update(ctx context.Context, p *Part) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.Specifications == nil {
		p.Specifications = map[string]any{}
	}
	err := r.db.QueryRow(ctx, `
		UPDATE parts
		SET part_number=$2, name=$3, description=$4, manufacturer=$5, category=$6,
		    quantity=$7, unit_price=$8, location=$9, datasheet_url=$10,
		    specifications=$11, updated_at=NOW()
		WHERE id=$1
		RETURNING created_at, updated_at
	`, p.ID, p.PartNumber, p.Name, p.Description, p.Manufacturer, p.Category,
		p.Quantity, p.UnitPrice.String(), p.Location, p.DatasheetURL, p.Specifications).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM parts WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

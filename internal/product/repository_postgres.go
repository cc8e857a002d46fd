package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, category, price, description, image_url, quantity_info, is_available, created_at`

	listAvailableQuery = `
        SELECT ` + productColumns + `
        FROM products
        WHERE is_available = true
        ORDER BY name
    `

	listByIDsQuery = `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = ANY($1::text[])
        ORDER BY array_position($1::text[], id)
    `

	upsertByNameQuery = `
        INSERT INTO products (id, name, category, price, description, image_url, quantity_info, is_available, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (name) DO UPDATE SET
            category = EXCLUDED.category,
            price = EXCLUDED.price,
            description = EXCLUDED.description,
            image_url = EXCLUDED.image_url,
            quantity_info = EXCLUDED.quantity_info,
            is_available = EXCLUDED.is_available
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAvailable() ([]Product, error) {
	rows, err := r.db.Query(listAvailableQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	var p Product
	err := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.QuantityInfo, &p.IsAvailable, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(listByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) UpsertByName(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(upsertByNameQuery,
			p.ID, p.Name, p.Category, p.Price, p.Description, p.ImageURL, p.QuantityInfo, p.IsAvailable, p.CreatedAt); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.QuantityInfo, &p.IsAvailable, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package cart

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository keeps carts in a local SQLite file so they survive process
// restarts without any network round-trip.
type SQLiteRepository struct {
	db *sql.DB
}

const cartSchema = `
CREATE TABLE IF NOT EXISTS cart_items (
    session_id    TEXT NOT NULL,
    position      INTEGER NOT NULL,
    product_id    TEXT NOT NULL,
    name          TEXT NOT NULL,
    price         INTEGER NOT NULL,
    quantity      INTEGER NOT NULL,
    image_url     TEXT NOT NULL DEFAULT '',
    quantity_info TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (session_id, product_id)
)`

// OpenSQLiteRepository opens (creating if needed) the cart database at path.
func OpenSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(cartSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Load(sessionID string) ([]Item, error) {
	rows, err := r.db.Query(`SELECT product_id, name, price, quantity, image_url, quantity_info
        FROM cart_items WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Quantity, &it.ImageURL, &it.QuantityInfo); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) Save(sessionID string, items []Item) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE session_id = ?`, sessionID); err != nil {
		tx.Rollback()
		return err
	}
	for i, it := range items {
		if _, err := tx.Exec(`INSERT INTO cart_items (session_id, position, product_id, name, price, quantity, image_url, quantity_info)
            VALUES (?,?,?,?,?,?,?,?)`,
			sessionID, i, it.ID, it.Name, it.Price, it.Quantity, it.ImageURL, it.QuantityInfo); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Clear(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id = ?`, sessionID)
	return err
}

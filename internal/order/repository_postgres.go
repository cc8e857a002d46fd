package order

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const createOrderQuery = `
    INSERT INTO orders (id, order_number, customer_name, customer_phone, delivery_address, order_items, total_amount, referral_code, status, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.OrderItems)
	if err != nil {
		return Order{}, err
	}

	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}

	err = r.db.QueryRow(createOrderQuery,
		ord.ID, ord.OrderNumber, ord.CustomerName, ord.CustomerPhone, ord.DeliveryAddress,
		itemsJSON, ord.TotalAmount, ord.ReferralCode, ord.Status, ord.CreatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

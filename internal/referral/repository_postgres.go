package referral

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	findActiveByCodeQuery = `
        SELECT id, referral_code, referral_name, referral_phone, total_orders, total_revenue, is_active
        FROM referrals
        WHERE referral_code = $1 AND is_active = true
        LIMIT 1
    `

	addOrderStatsQuery = `
        UPDATE referrals
        SET total_orders = total_orders + 1, total_revenue = total_revenue + $1
        WHERE id = $2
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindActiveByCode(code string) (Referral, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var rec Referral
	err := r.db.QueryRow(findActiveByCodeQuery, code).Scan(
		&rec.ID, &rec.ReferralCode, &rec.ReferralName, &rec.ReferralPhone,
		&rec.TotalOrders, &rec.TotalRevenue, &rec.IsActive)
	if err == sql.ErrNoRows {
		return Referral{}, ErrNotFound
	}
	if err != nil {
		return Referral{}, err
	}
	return rec, nil
}

func (r *PostgresRepository) AddOrderStats(id string, revenue int) error {
	res, err := r.db.Exec(addOrderStatsQuery, revenue, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

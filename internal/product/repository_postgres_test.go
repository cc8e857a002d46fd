package product

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "price", "description", "image_url", "quantity_info", "is_available", "created_at"})
}

func TestListAvailable_FiltersAndOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow("prod_19", "Vanilla Ice Cream", "Classic", 79, "d", "/images/products/vanilla-ice-cream.jpg", "1 Cup, 120 Ml", true, "t").
		AddRow("prod_13", "Waffle Cone", "Waffle Cone", 25, "d", "/images/products/waffle-cone.jpg", "1 Piece", true, "t")
	mock.ExpectQuery("WHERE is_available = true").WillReturnRows(rows)

	products, err := repo.ListAvailable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Vanilla Ice Cream" {
		t.Fatalf("unexpected first product %q", products[0].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByIDs_EmptySliceSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	products, err := repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty result, got %d", len(products))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should have run: %v", err)
	}
}

func TestGetByID_MissingRowIsErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products WHERE id").WithArgs("ghost").WillReturnRows(productRows())

	if _, err := repo.GetByID("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertByName_RunsInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	seed := SeedProducts()[:2]

	mock.ExpectBegin()
	for range seed {
		mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := repo.UpsertByName(seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertByName_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if err := repo.UpsertByName(SeedProducts()[:1]); err == nil {
		t.Fatal("expected an error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

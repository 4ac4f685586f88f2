package bill

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository handles database operations for bills. Records are immutable:
// the schema supports insert, read and delete only.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new bill repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateBill inserts a finalized bill record. Items and participants are
// stored as JSON documents; the record is never updated afterwards.
func (r *Repository) CreateBill(ctx context.Context, b *Bill) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	participants, err := json.Marshal(b.Participants)
	if err != nil {
		return fmt.Errorf("marshal participants: %w", err)
	}

	query := `
		INSERT INTO bills (id, title, tax_rate, is_equally, items, participants, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.TaxRatePercent.String(),
		b.SplitMode == SplitModeEqual,
		items,
		participants,
		b.CreatedAt,
	)
	return err
}

// GetBillByID retrieves a bill by its ID, returning nil if not found
func (r *Repository) GetBillByID(ctx context.Context, id string) (*Bill, error) {
	query := `
		SELECT id, title, tax_rate, is_equally, items, participants, created_at
		FROM bills
		WHERE id = $1`

	b, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBills retrieves all bills sorted by date, newest first
func (r *Repository) ListBills(ctx context.Context) ([]*Bill, error) {
	query := `
		SELECT id, title, tax_rate, is_equally, items, participants, created_at
		FROM bills
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// DeleteBill removes a bill record
func (r *Repository) DeleteBill(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBill(row rowScanner) (*Bill, error) {
	var (
		b            Bill
		taxRate      string
		isEqually    bool
		items        []byte
		participants []byte
	)

	err := row.Scan(&b.ID, &b.Title, &taxRate, &isEqually, &items, &participants, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	b.TaxRatePercent, err = decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("parse tax rate: %w", err)
	}

	if isEqually {
		b.SplitMode = SplitModeEqual
	} else {
		b.SplitMode = SplitModeItemized
	}

	if err := json.Unmarshal(items, &b.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(participants, &b.Participants); err != nil {
		return nil, fmt.Errorf("unmarshal participants: %w", err)
	}

	return &b, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, user_id, customer_id, type, amount, category, description, date, due_date,
		payment_status, paid_amount, sale_id, contract_id, recurrence_id, attachment_url, created_at`

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.UserID, tx.CustomerID, tx.Type, tx.Amount, tx.Category, tx.Description,
		tx.Date, tx.DueDate, tx.PaymentStatus, tx.PaidAmount, tx.SaleID, tx.ContractID,
		tx.RecurrenceID, tx.AttachmentURL, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var tx entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.UserID, &tx.CustomerID, &tx.Type, &tx.Amount, &tx.Category, &tx.Description,
		&tx.Date, &tx.DueDate, &tx.PaymentStatus, &tx.PaidAmount, &tx.SaleID, &tx.ContractID,
		&tx.RecurrenceID, &tx.AttachmentURL, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

// ListByUser lista las transacciones de la cuenta, más recientes primero.
func (r *TransactionRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	return r.list(query, userID)
}

// ListByContract lista las transacciones ligadas a un contrato.
func (r *TransactionRepo) ListByContract(contractID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE contract_id = $1 ORDER BY date DESC`
	return r.list(query, contractID)
}

// Update actualiza una transacción.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions SET customer_id = $2, type = $3, amount = $4, category = $5,
			description = $6, date = $7, due_date = $8, payment_status = $9, paid_amount = $10,
			sale_id = $11, contract_id = $12, recurrence_id = $13, attachment_url = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CustomerID, tx.Type, tx.Amount, tx.Category, tx.Description, tx.Date,
		tx.DueDate, tx.PaymentStatus, tx.PaidAmount, tx.SaleID, tx.ContractID,
		tx.RecurrenceID, tx.AttachmentURL,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) list(query string, arg any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var tx entity.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.CustomerID, &tx.Type, &tx.Amount, &tx.Category, &tx.Description,
			&tx.Date, &tx.DueDate, &tx.PaymentStatus, &tx.PaidAmount, &tx.SaleID, &tx.ContractID,
			&tx.RecurrenceID, &tx.AttachmentURL, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

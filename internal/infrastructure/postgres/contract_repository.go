package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, user_id, customer_id, title, pdf_url, payment_proof_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.UserID, contract.CustomerID, contract.Title,
		contract.PDFURL, contract.PaymentProofURL, contract.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `
		SELECT id, user_id, customer_id, title, pdf_url, payment_proof_url, created_at
		FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.CustomerID, &c.Title, &c.PDFURL, &c.PaymentProofURL, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// ListByUser lista los contratos de la cuenta, más recientes primero.
func (r *ContractRepo) ListByUser(userID string) ([]*entity.Contract, error) {
	query := `
		SELECT id, user_id, customer_id, title, pdf_url, payment_proof_url, created_at
		FROM contracts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.UserID, &c.CustomerID, &c.Title, &c.PDFURL, &c.PaymentProofURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contrato.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET customer_id = $2, title = $3, pdf_url = $4, payment_proof_url = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.CustomerID, contract.Title, contract.PDFURL, contract.PaymentProofURL,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// Delete elimina un contrato por ID.
func (r *ContractRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

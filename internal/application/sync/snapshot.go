package sync

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// Snapshot es la foto en memoria del estado de la cuenta sobre la que el
// reducer decide los efectos. El backing store no ofrece cascadas ni
// transacciones entre entidades, así que toda la consistencia derivada se
// calcula aquí y se aplica después, escritura por escritura.
type Snapshot struct {
	Transactions []*entity.Transaction
	Contracts    []*entity.Contract
	Sales        []*entity.Sale
	Ideas        []*entity.VideoIdea
	Tasks        []*entity.Task
}

// TransactionSaleID resuelve la venta ligada a una transacción: primero el
// campo explícito SaleID y, para filas antiguas, el marcador en la descripción.
func TransactionSaleID(tx *entity.Transaction) string {
	if tx == nil {
		return ""
	}
	if tx.SaleID != "" {
		return tx.SaleID
	}
	return ParseSaleMarker(tx.Description)
}

// TransactionForSale localiza la transacción sombra de una venta.
// Devuelve nil si no existe (el store puede ya estar consistente).
func (s *Snapshot) TransactionForSale(saleID string) *entity.Transaction {
	for _, tx := range s.Transactions {
		if TransactionSaleID(tx) == saleID {
			return tx
		}
	}
	return nil
}

// ContractByID busca un contrato en el snapshot.
func (s *Snapshot) ContractByID(id string) *entity.Contract {
	for _, c := range s.Contracts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SaleByID busca una venta en el snapshot.
func (s *Snapshot) SaleByID(id string) *entity.Sale {
	for _, sale := range s.Sales {
		if sale.ID == id {
			return sale
		}
	}
	return nil
}

// IdeaByID busca una idea en el snapshot.
func (s *Snapshot) IdeaByID(id string) *entity.VideoIdea {
	for _, i := range s.Ideas {
		if i.ID == id {
			return i
		}
	}
	return nil
}

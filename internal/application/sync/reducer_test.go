package sync_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

var testNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Venta → transacción sombra
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCreated_EmiteTransaccionSombra(t *testing.T) {
	sale := &entity.Sale{
		ID:         "sale-1",
		UserID:     "user-1",
		CustomerID: "cust-1",
		Total:      decimal.NewFromFloat(150.50),
		Status:     entity.SaleCompleted,
		Items:      []entity.SaleItem{{ID: "i1"}, {ID: "i2"}},
	}

	effects := sync.SaleCreated(&sync.Snapshot{}, sale, "tx-1", testNow)
	require.Len(t, effects, 1, "una venta nueva debe emitir exactamente un efecto")

	insert, ok := effects[0].(sync.InsertTransaction)
	require.True(t, ok, "el efecto debe ser InsertTransaction")
	assert.Equal(t, "tx-1", insert.Tx.ID)
	assert.Equal(t, "user-1", insert.Tx.UserID)
	assert.Equal(t, "cust-1", insert.Tx.CustomerID)
	assert.Equal(t, entity.TransactionIncome, insert.Tx.Type,
		"la transacción sombra siempre es receita")
	assert.True(t, insert.Tx.Amount.Equal(decimal.NewFromFloat(150.50)))
	assert.Equal(t, "Vendas", insert.Tx.Category)
	assert.Equal(t, "Venda #sale-1 - 2 itens", insert.Tx.Description)
	assert.Equal(t, entity.PaymentPaid, insert.Tx.PaymentStatus,
		"venta concluida debe espejarse como pago")
	assert.Equal(t, "sale-1", insert.Tx.SaleID, "el vínculo explícito debe quedar seteado")
}

func TestSaleCreated_VentaPendiente_EstadoPendiente(t *testing.T) {
	sale := &entity.Sale{ID: "s1", UserID: "u1", Status: entity.SalePending, Total: decimal.NewFromInt(10)}
	effects := sync.SaleCreated(&sync.Snapshot{}, sale, "tx-1", testNow)
	require.Len(t, effects, 1)
	assert.Equal(t, entity.PaymentPending, effects[0].(sync.InsertTransaction).Tx.PaymentStatus)
}

func TestSaleCreated_VentaCancelada_NoEmite(t *testing.T) {
	sale := &entity.Sale{ID: "s1", Status: entity.SaleCancelled}
	assert.Empty(t, sync.SaleCreated(&sync.Snapshot{}, sale, "tx-1", testNow),
		"una venta ya cancelada no genera transacción sombra")
}

func TestSaleCreated_SombraExistente_NoDuplica(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{{ID: "tx-0", SaleID: "s1"}},
	}
	sale := &entity.Sale{ID: "s1", Status: entity.SaleCompleted}
	assert.Empty(t, sync.SaleCreated(snap, sale, "tx-1", testNow),
		"re-aplicar la regla con la sombra ya presente debe ser no-op")
}

func TestSaleStatusChanged_EspejaEstado(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{
			{ID: "tx-1", SaleID: "s1", PaymentStatus: entity.PaymentPending},
		},
	}
	sale := &entity.Sale{ID: "s1", Status: entity.SaleCompleted}

	effects := sync.SaleStatusChanged(snap, sale)
	require.Len(t, effects, 1)
	update := effects[0].(sync.UpdateTransaction)
	assert.Equal(t, "tx-1", update.Tx.ID)
	assert.Equal(t, entity.PaymentPaid, update.Tx.PaymentStatus)
	// El snapshot no debe mutarse: el efecto lleva una copia.
	assert.Equal(t, entity.PaymentPending, snap.Transactions[0].PaymentStatus,
		"el reducer nunca muta el snapshot")
}

func TestSaleStatusChanged_Cancelada_EstadoCancelado(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{
			{ID: "tx-1", SaleID: "s1", PaymentStatus: entity.PaymentPaid},
		},
	}
	effects := sync.SaleStatusChanged(snap, &entity.Sale{ID: "s1", Status: entity.SaleCancelled})
	require.Len(t, effects, 1)
	assert.Equal(t, entity.PaymentCancelled, effects[0].(sync.UpdateTransaction).Tx.PaymentStatus,
		"cancelar la venta debe llevar la sombra al caso explícito cancelado")
}

func TestSaleStatusChanged_SinCambio_NoOp(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{{ID: "tx-1", SaleID: "s1", PaymentStatus: entity.PaymentPaid}},
	}
	assert.Empty(t, sync.SaleStatusChanged(snap, &entity.Sale{ID: "s1", Status: entity.SaleCompleted}))
}

func TestSaleStatusChanged_SinSombra_NoOp(t *testing.T) {
	assert.Empty(t, sync.SaleStatusChanged(&sync.Snapshot{}, &entity.Sale{ID: "s1", Status: entity.SaleCompleted}),
		"sin transacción ligada el espejo es un no-op silencioso")
}

func TestSaleDeleted_BorraSombra(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{
			// Fila legacy: sin SaleID, solo el marcador en la descripción.
			{ID: "tx-legacy", Description: "Venda #s1 - 1 item"},
		},
	}
	effects := sync.SaleDeleted(snap, "s1")
	require.Len(t, effects, 1)
	assert.Equal(t, "tx-legacy", effects[0].(sync.DeleteTransaction).ID,
		"la sombra legacy debe resolverse por el marcador")
}

func TestSaleDeleted_SinSombra_NoOp(t *testing.T) {
	assert.Empty(t, sync.SaleDeleted(&sync.Snapshot{}, "s1"))
}

func TestTransactionDeleted_BorraVentaLigada(t *testing.T) {
	snap := &sync.Snapshot{
		Sales: []*entity.Sale{{ID: "s1"}},
	}
	tx := &entity.Transaction{ID: "tx-1", SaleID: "s1"}

	effects := sync.TransactionDeleted(snap, tx)
	require.Len(t, effects, 1)
	assert.Equal(t, "s1", effects[0].(sync.DeleteSale).ID,
		"borrar la sombra debe arrastrar la venta para no dejarla sin rastro financiero")
}

func TestTransactionDeleted_SinVinculo_NoOp(t *testing.T) {
	assert.Empty(t, sync.TransactionDeleted(&sync.Snapshot{}, &entity.Transaction{ID: "tx-1", Description: "Aluguel"}),
		"una transacción normal no arrastra nada al borrarse")
}

func TestTransactionDeleted_VentaYaBorrada_NoOp(t *testing.T) {
	tx := &entity.Transaction{ID: "tx-1", SaleID: "s1"}
	assert.Empty(t, sync.TransactionDeleted(&sync.Snapshot{}, tx),
		"si la venta ya no existe el efecto sobra")
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante contrato ↔ transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestContractProofChanged_PropagaATransaccionesLigadas(t *testing.T) {
	snap := &sync.Snapshot{
		Transactions: []*entity.Transaction{
			{ID: "tx-1", ContractID: "c1"},
			{ID: "tx-2", ContractID: "c1", AttachmentURL: "/files/proof.pdf"}, // ya tiene la URL
			{ID: "tx-3", ContractID: "otro"},
		},
	}
	contract := &entity.Contract{ID: "c1", PaymentProofURL: "/files/proof.pdf"}

	effects := sync.ContractProofChanged(snap, contract)
	require.Len(t, effects, 1, "solo la transacción desactualizada debe actualizarse")
	update := effects[0].(sync.UpdateTransaction)
	assert.Equal(t, "tx-1", update.Tx.ID)
	assert.Equal(t, "/files/proof.pdf", update.Tx.AttachmentURL)
}

func TestContractProofChanged_SinComprobante_NoOp(t *testing.T) {
	snap := &sync.Snapshot{Transactions: []*entity.Transaction{{ID: "tx-1", ContractID: "c1"}}}
	assert.Empty(t, sync.ContractProofChanged(snap, &entity.Contract{ID: "c1"}),
		"un contrato sin comprobante no propaga nada")
}

func TestTransactionUpserted_PullHeredaComprobante(t *testing.T) {
	snap := &sync.Snapshot{
		Contracts: []*entity.Contract{{ID: "c1", PaymentProofURL: "/files/proof.pdf"}},
	}
	tx := &entity.Transaction{ID: "tx-1", ContractID: "c1"}

	effects := sync.TransactionUpserted(snap, tx)
	require.Len(t, effects, 1)
	update := effects[0].(sync.UpdateTransaction)
	assert.Equal(t, "/files/proof.pdf", update.Tx.AttachmentURL,
		"la transacción sin adjunto debe heredar el comprobante del contrato")
}

func TestTransactionUpserted_PushAdoptaAdjunto(t *testing.T) {
	snap := &sync.Snapshot{
		Contracts: []*entity.Contract{{ID: "c1"}},
	}
	tx := &entity.Transaction{ID: "tx-1", ContractID: "c1", AttachmentURL: "/files/nuevo.pdf"}

	effects := sync.TransactionUpserted(snap, tx)
	require.Len(t, effects, 1)
	push := effects[0].(sync.UpdateContractProof)
	assert.Equal(t, "c1", push.ContractID)
	assert.Equal(t, "/files/nuevo.pdf", push.ProofURL,
		"el adjunto propio de la transacción debe subir al contrato")
}

func TestTransactionUpserted_YaConsistente_NoOp(t *testing.T) {
	snap := &sync.Snapshot{
		Contracts: []*entity.Contract{{ID: "c1", PaymentProofURL: "/files/proof.pdf"}},
	}
	tx := &entity.Transaction{ID: "tx-1", ContractID: "c1", AttachmentURL: "/files/proof.pdf"}
	assert.Empty(t, sync.TransactionUpserted(snap, tx),
		"URLs iguales en ambos lados no emiten nada: pull y push no se re-disparan")
}

func TestTransactionUpserted_AmbosVacios_NoOp(t *testing.T) {
	snap := &sync.Snapshot{Contracts: []*entity.Contract{{ID: "c1"}}}
	assert.Empty(t, sync.TransactionUpserted(snap, &entity.Transaction{ID: "tx-1", ContractID: "c1"}))
}

func TestTransactionUpserted_SinContrato_NoOp(t *testing.T) {
	tx := &entity.Transaction{ID: "tx-1", ContractID: "c-fantasma", AttachmentURL: "/files/x.pdf"}
	assert.Empty(t, sync.TransactionUpserted(&sync.Snapshot{}, tx))
	assert.Empty(t, sync.TransactionUpserted(&sync.Snapshot{}, &entity.Transaction{ID: "tx-2"}),
		"transacción sin contrato ligado no participa de la regla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Kanban ↔ ideas de video
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskMoved_EspejaEstadoEnIdea(t *testing.T) {
	snap := &sync.Snapshot{
		Ideas: []*entity.VideoIdea{{ID: "idea-1", Status: entity.IdeaPending}},
	}
	task := &entity.Task{ID: "task-1", IdeaID: "idea-1"}

	effects := sync.TaskMoved(snap, task, entity.TaskInProgress)
	require.Len(t, effects, 1)
	set := effects[0].(sync.SetIdeaStatus)
	assert.Equal(t, "idea-1", set.IdeaID)
	assert.Equal(t, entity.IdeaProcessing, set.Status,
		"inprogress debe espejarse como processando")
}

func TestTaskMoved_ColumnaDone_IdeaConcluida(t *testing.T) {
	snap := &sync.Snapshot{Ideas: []*entity.VideoIdea{{ID: "i1", Status: entity.IdeaProcessing}}}
	effects := sync.TaskMoved(snap, &entity.Task{ID: "t1", IdeaID: "i1"}, entity.TaskDone)
	require.Len(t, effects, 1)
	assert.Equal(t, entity.IdeaCompleted, effects[0].(sync.SetIdeaStatus).Status)
}

func TestTaskMoved_SinIdeaLigada_NoOp(t *testing.T) {
	assert.Empty(t, sync.TaskMoved(&sync.Snapshot{}, &entity.Task{ID: "t1"}, entity.TaskDone),
		"tareas sueltas no espejan nada")
}

func TestTaskMoved_EstadoYaCoincide_NoOp(t *testing.T) {
	snap := &sync.Snapshot{Ideas: []*entity.VideoIdea{{ID: "i1", Status: entity.IdeaCompleted}}}
	assert.Empty(t, sync.TaskMoved(snap, &entity.Task{ID: "t1", IdeaID: "i1"}, entity.TaskDone))
}

func TestPromoteIdea_CreaTareaYLiga(t *testing.T) {
	idea := &entity.VideoIdea{
		ID:          "idea-1",
		UserID:      "user-1",
		CustomerID:  "cust-1",
		Title:       "Tutorial de edición",
		Description: "Corte básico en CapCut",
		Category:    "tutorial",
	}

	effects, err := sync.PromoteIdea(&sync.Snapshot{}, idea, "task-1", testNow)
	require.NoError(t, err)
	require.Len(t, effects, 2, "promover emite la tarea y el enlace, en ese orden")

	insert := effects[0].(sync.InsertTask)
	assert.Equal(t, "task-1", insert.Task.ID)
	assert.Equal(t, "user-1", insert.Task.UserID)
	assert.Equal(t, "idea-1", insert.Task.IdeaID)
	assert.Equal(t, "Tutorial de edición", insert.Task.Title)
	assert.Equal(t, entity.TaskTodo, insert.Task.Column, "la tarea nace en todo")
	assert.Equal(t, []string{"tutorial"}, insert.Task.Tags)

	link := effects[1].(sync.LinkIdeaToTask)
	assert.Equal(t, "idea-1", link.IdeaID)
	assert.Equal(t, "task-1", link.TaskID)
	assert.Equal(t, entity.IdeaPending, link.Status)
}

func TestPromoteIdea_YaPromovida_Rechaza(t *testing.T) {
	idea := &entity.VideoIdea{ID: "i1", TaskID: "task-viejo"}
	_, err := sync.PromoteIdea(&sync.Snapshot{}, idea, "task-nuevo", testNow)
	assert.ErrorIs(t, err, domain.ErrAlreadyPromoted,
		"una idea con tarea ligada no puede promoverse dos veces")
}

func TestPromoteIdea_IdeaNil_NotFound(t *testing.T) {
	_, err := sync.PromoteIdea(&sync.Snapshot{}, nil, "task-1", testNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

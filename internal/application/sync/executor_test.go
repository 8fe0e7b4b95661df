package sync_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRepo struct {
	rows      map[string]*entity.Transaction
	failOn    string // "create" | "update" | "delete" → fuerza error
	updates   int
	lastError error
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{rows: make(map[string]*entity.Transaction)}
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	if r.failOn == "create" {
		r.lastError = errors.New("falla simulada en create")
		return r.lastError
	}
	r.rows[tx.ID] = tx
	return nil
}

func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) { return r.rows[id], nil }

func (r *fakeTxRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTxRepo) ListByContract(contractID string) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTxRepo) Update(tx *entity.Transaction) error {
	if r.failOn == "update" {
		return errors.New("falla simulada en update")
	}
	r.updates++
	r.rows[tx.ID] = tx
	return nil
}

func (r *fakeTxRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

type fakeSaleRepo struct {
	rows    map[string]*entity.Sale
	deletes []string
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{rows: make(map[string]*entity.Sale)} }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error         { r.rows[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error { return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.rows[id], nil
}
func (r *fakeSaleRepo) ListByUser(userID string, limit, offset int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *fakeSaleRepo) UpdateStatus(id, status string) error { return nil }
func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.rows, id)
	r.deletes = append(r.deletes, id)
	return nil
}

type fakeContractRepo struct {
	rows    map[string]*entity.Contract
	updates int
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{rows: make(map[string]*entity.Contract)}
}

func (r *fakeContractRepo) Create(c *entity.Contract) error          { r.rows[c.ID] = c; return nil }
func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) { return r.rows[id], nil }
func (r *fakeContractRepo) ListByUser(userID string) ([]*entity.Contract, error) {
	return nil, nil
}
func (r *fakeContractRepo) Update(c *entity.Contract) error {
	r.updates++
	r.rows[c.ID] = c
	return nil
}
func (r *fakeContractRepo) Delete(id string) error { delete(r.rows, id); return nil }

type fakeIdeaRepo struct {
	rows    map[string]*entity.VideoIdea
	updates int
}

func newFakeIdeaRepo() *fakeIdeaRepo { return &fakeIdeaRepo{rows: make(map[string]*entity.VideoIdea)} }

func (r *fakeIdeaRepo) Create(i *entity.VideoIdea) error              { r.rows[i.ID] = i; return nil }
func (r *fakeIdeaRepo) GetByID(id string) (*entity.VideoIdea, error)  { return r.rows[id], nil }
func (r *fakeIdeaRepo) GetByShareToken(token string) (*entity.VideoIdea, error) {
	return nil, nil
}
func (r *fakeIdeaRepo) ListByUser(userID string) ([]*entity.VideoIdea, error) { return nil, nil }
func (r *fakeIdeaRepo) Update(i *entity.VideoIdea) error {
	r.updates++
	r.rows[i.ID] = i
	return nil
}
func (r *fakeIdeaRepo) Delete(id string) error { delete(r.rows, id); return nil }

type fakeTaskRepo struct {
	rows map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo { return &fakeTaskRepo{rows: make(map[string]*entity.Task)} }

func (r *fakeTaskRepo) Create(t *entity.Task) error              { r.rows[t.ID] = t; return nil }
func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error)  { return r.rows[id], nil }
func (r *fakeTaskRepo) ListByUser(userID string) ([]*entity.Task, error) { return nil, nil }
func (r *fakeTaskRepo) Update(t *entity.Task) error              { r.rows[t.ID] = t; return nil }
func (r *fakeTaskRepo) Delete(id string) error                   { delete(r.rows, id); return nil }

type executorFixture struct {
	txs       *fakeTxRepo
	sales     *fakeSaleRepo
	contracts *fakeContractRepo
	ideas     *fakeIdeaRepo
	tasks     *fakeTaskRepo
	executor  *sync.Executor
}

func newExecutorFixture() *executorFixture {
	f := &executorFixture{
		txs:       newFakeTxRepo(),
		sales:     newFakeSaleRepo(),
		contracts: newFakeContractRepo(),
		ideas:     newFakeIdeaRepo(),
		tasks:     newFakeTaskRepo(),
	}
	f.executor = sync.NewExecutor(f.txs, f.sales, f.contracts, f.ideas, f.tasks, zerolog.Nop())
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Executor
// ──────────────────────────────────────────────────────────────────────────────

func TestExecutor_AplicaColaEnOrden(t *testing.T) {
	f := newExecutorFixture()
	f.ideas.rows["i1"] = &entity.VideoIdea{ID: "i1"}

	err := f.executor.Apply([]sync.Effect{
		sync.InsertTask{Task: &entity.Task{ID: "t1", Title: "Grabar intro"}},
		sync.LinkIdeaToTask{IdeaID: "i1", TaskID: "t1", Status: entity.IdeaPending},
	})
	require.NoError(t, err)

	assert.Contains(t, f.tasks.rows, "t1", "la tarea debe quedar creada")
	assert.Equal(t, "t1", f.ideas.rows["i1"].TaskID, "la idea debe quedar ligada a la tarea")
	assert.Equal(t, entity.IdeaPending, f.ideas.rows["i1"].Status)
}

func TestExecutor_PrimerFalloAbandonaElResto(t *testing.T) {
	f := newExecutorFixture()
	f.txs.failOn = "create"
	f.sales.rows["s1"] = &entity.Sale{ID: "s1"}

	err := f.executor.Apply([]sync.Effect{
		sync.InsertTransaction{Tx: &entity.Transaction{ID: "tx-1"}},
		sync.DeleteSale{ID: "s1"},
	})
	require.Error(t, err, "el error del primer efecto debe propagarse")
	assert.Contains(t, f.sales.rows, "s1",
		"los efectos posteriores al fallo no deben ejecutarse")
}

func TestExecutor_DeleteSale(t *testing.T) {
	f := newExecutorFixture()
	f.sales.rows["s1"] = &entity.Sale{ID: "s1"}

	require.NoError(t, f.executor.Apply([]sync.Effect{sync.DeleteSale{ID: "s1"}}))
	assert.NotContains(t, f.sales.rows, "s1")
	assert.Equal(t, []string{"s1"}, f.sales.deletes)
}

func TestExecutor_UpdateContractProof_Idempotente(t *testing.T) {
	f := newExecutorFixture()
	f.contracts.rows["c1"] = &entity.Contract{ID: "c1", PaymentProofURL: "/files/proof.pdf"}

	// La URL ya es la deseada: no debe escribirse nada.
	err := f.executor.Apply([]sync.Effect{
		sync.UpdateContractProof{ContractID: "c1", ProofURL: "/files/proof.pdf"},
	})
	require.NoError(t, err)
	assert.Zero(t, f.contracts.updates, "re-aplicar el mismo comprobante debe ser no-op")

	// URL distinta: una sola escritura.
	err = f.executor.Apply([]sync.Effect{
		sync.UpdateContractProof{ContractID: "c1", ProofURL: "/files/otro.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.contracts.updates)
	assert.Equal(t, "/files/otro.pdf", f.contracts.rows["c1"].PaymentProofURL)
}

func TestExecutor_UpdateContractProof_ContratoDesaparecido(t *testing.T) {
	f := newExecutorFixture()
	err := f.executor.Apply([]sync.Effect{
		sync.UpdateContractProof{ContractID: "c-fantasma", ProofURL: "/files/x.pdf"},
	})
	assert.NoError(t, err,
		"un contrato borrado entre decisión y ejecución no es un error")
}

func TestExecutor_SetIdeaStatus_Idempotente(t *testing.T) {
	f := newExecutorFixture()
	f.ideas.rows["i1"] = &entity.VideoIdea{ID: "i1", Status: entity.IdeaProcessing}

	err := f.executor.Apply([]sync.Effect{
		sync.SetIdeaStatus{IdeaID: "i1", Status: entity.IdeaProcessing},
	})
	require.NoError(t, err)
	assert.Zero(t, f.ideas.updates, "mismo estado no debe escribir")

	err = f.executor.Apply([]sync.Effect{
		sync.SetIdeaStatus{IdeaID: "i1", Status: entity.IdeaCompleted},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.ideas.updates)
	assert.Equal(t, entity.IdeaCompleted, f.ideas.rows["i1"].Status)
}

func TestExecutor_SetIdeaStatus_IdeaDesaparecida(t *testing.T) {
	f := newExecutorFixture()
	err := f.executor.Apply([]sync.Effect{
		sync.SetIdeaStatus{IdeaID: "i-fantasma", Status: entity.IdeaCompleted},
	})
	assert.NoError(t, err)
}

func TestExecutor_ColaVacia_NoOp(t *testing.T) {
	f := newExecutorFixture()
	assert.NoError(t, f.executor.Apply(nil))
}

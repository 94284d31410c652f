// Package memory implementa los repositorios del estoque en memoria. Se usa en tests y
// como almacén de apoyo cuando se quiere ejecutar el motor sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository        = (*Store)(nil)
	_ repository.TransactionRepository = (*TransactionStore)(nil)
	_ repository.PersonRepository      = (*PersonStore)(nil)
	_ repository.ProjectRepository     = (*ProjectStore)(nil)
)

var _ inventory.TxRunner = (*Store)(nil)

// Store guarda ítems, transacciones, personas y proyectos. Cada tabla puede configurarse para
// fallar (ListErr / CreateErr) y así probar la propagación de errores.
type Store struct {
	mu           sync.Mutex
	runMu        sync.Mutex
	items        []entity.Item
	transactions []entity.Transaction
	people       []entity.Person
	projects     []entity.Project

	ItemsErr    error
	ListTxErr   error
	CreateTxErr error
	PeopleErr   error
	ProjectsErr error

	creates int
}

// NewStore construye el almacén con ítems iniciales.
func NewStore(items ...entity.Item) *Store {
	return &Store{items: append([]entity.Item(nil), items...)}
}

// AddTransactions agrega transacciones ya existentes (histórico).
func (s *Store) AddTransactions(txs ...entity.Transaction) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txs...)
	return s
}

// AddPeople agrega personas.
func (s *Store) AddPeople(people ...entity.Person) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = append(s.people, people...)
	return s
}

// AddProjects agrega proyectos.
func (s *Store) AddProjects(projects ...entity.Project) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, projects...)
	return s
}

// Creates número de llamadas a Create que llegaron al almacén.
func (s *Store) Creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

// List devuelve los ítems.
func (s *Store) List(_ context.Context) ([]entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ItemsErr != nil {
		return nil, s.ItemsErr
	}
	return append([]entity.Item(nil), s.items...), nil
}

// GetByID devuelve el ítem o (nil, nil).
func (s *Store) GetByID(_ context.Context, id string) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ItemsErr != nil {
		return nil, s.ItemsErr
	}
	for _, it := range s.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

// Transactions vista del almacén como TransactionRepository.
func (s *Store) Transactions() *TransactionStore { return (*TransactionStore)(s) }

// People vista del almacén como PersonRepository.
func (s *Store) People() *PersonStore { return (*PersonStore)(s) }

// Projects vista del almacén como ProjectRepository.
func (s *Store) Projects() *ProjectStore { return (*ProjectStore)(s) }

// TransactionStore adapta Store al puerto de transacciones.
type TransactionStore Store

// List devuelve todas las transacciones en orden de inserción.
func (t *TransactionStore) List(_ context.Context) ([]entity.Transaction, error) {
	s := (*Store)(t)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListTxErr != nil {
		return nil, s.ListTxErr
	}
	return append([]entity.Transaction(nil), s.transactions...), nil
}

// Create agrega la transacción y le asigna un UUID si no trae ID.
func (t *TransactionStore) Create(_ context.Context, tx *entity.Transaction) error {
	s := (*Store)(t)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.CreateTxErr != nil {
		return s.CreateTxErr
	}
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	s.transactions = append(s.transactions, *tx)
	return nil
}

// PersonStore adapta Store al puerto de personas.
type PersonStore Store

// List devuelve las personas.
func (p *PersonStore) List(_ context.Context) ([]entity.Person, error) {
	s := (*Store)(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PeopleErr != nil {
		return nil, s.PeopleErr
	}
	return append([]entity.Person(nil), s.people...), nil
}

// ProjectStore adapta Store al puerto de proyectos.
type ProjectStore Store

// List devuelve los proyectos.
func (p *ProjectStore) List(_ context.Context) ([]entity.Project, error) {
	s := (*Store)(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ProjectsErr != nil {
		return nil, s.ProjectsErr
	}
	return append([]entity.Project(nil), s.projects...), nil
}

// RunForItem serializa fn con las demás llamadas a RunForItem. No hay rollback: lo escrito queda.
func (s *Store) RunForItem(_ context.Context, _ string, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return fn(s, s.Transactions())
}

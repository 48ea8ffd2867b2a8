package dashboard

import (
	"sync"

	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
)

// Snapshot estado observable del store en un instante.
type Snapshot struct {
	Items   []entity.InventoryItem
	Loading bool
	Error   string // error de página del último fetch fallido ("" si no hay)
}

// ItemStore celda de estado única con la última lista obtenida del backend.
// Solo admite reemplazo completo. Cada fetch recibe un ticket creciente y su
// resultado se aplica únicamente si ningún fetch emitido después ya se aplicó
// (gana la petición más reciente). No hay cancelación: los fetch viejos
// simplemente se descartan al completar.
type ItemStore struct {
	mu       sync.RWMutex
	items    []entity.InventoryItem
	err      string
	issued   uint64 // último ticket emitido
	applied  uint64 // ticket más reciente aplicado (éxito o error)
	inFlight map[uint64]struct{}
}

// NewItemStore construye un store vacío.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items:    []entity.InventoryItem{},
		inFlight: make(map[uint64]struct{}),
	}
}

// Begin registra un fetch en curso y devuelve su ticket. Limpia el error de página.
func (s *ItemStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.inFlight[s.issued] = struct{}{}
	s.err = ""
	return s.issued
}

// Complete reemplaza la lista completa si el ticket no quedó obsoleto.
// Devuelve false si el resultado se descartó.
func (s *ItemStore) Complete(ticket uint64, items []entity.InventoryItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, ticket)
	if ticket < s.applied {
		return false
	}
	s.applied = ticket
	s.items = append(make([]entity.InventoryItem, 0, len(items)), items...)
	s.err = ""
	return true
}

// Fail registra el error de página sin tocar la lista (queda visible aunque esté desactualizada).
func (s *ItemStore) Fail(ticket uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, ticket)
	if ticket < s.applied {
		return false
	}
	s.applied = ticket
	s.err = message
	return true
}

// Snapshot devuelve una copia del estado actual.
func (s *ItemStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:   append(make([]entity.InventoryItem, 0, len(s.items)), s.items...),
		Loading: len(s.inFlight) > 0,
		Error:   s.err,
	}
}

// Items copia de la lista actual.
func (s *ItemStore) Items() []entity.InventoryItem {
	return s.Snapshot().Items
}

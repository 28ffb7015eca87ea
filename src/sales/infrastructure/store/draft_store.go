package store

import (
	"sync"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
)

// DraftStore guarda en memoria los borradores de venta en curso.
// Cada borrador pertenece a una única sesión de "nueva venta"; el mutex
// serializa las operaciones así dos mutaciones nunca se pisan.
type DraftStore struct {
	drafts map[string]*entity.OrderDraft
	mu     sync.RWMutex
}

// NewDraftStore crea un store vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]*entity.OrderDraft),
	}
}

// Create crea un borrador vacío y devuelve una copia.
func (s *DraftStore) Create() entity.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := entity.NewOrderDraft()
	s.drafts[draft.ID] = draft
	return *draft
}

// With ejecuta fn sobre el borrador bajo lock. Si fn devuelve error la
// mutación que haya hecho igual queda (el borrador se preserva para que
// el usuario reintente, nunca se descarta por un fallo).
func (s *DraftStore) With(draftID string, fn func(*entity.OrderDraft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return entity.ErrDraftNotFound
	}
	return fn(draft)
}

// Snapshot devuelve una copia del borrador para armar respuestas.
func (s *DraftStore) Snapshot(draftID string) (entity.OrderDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return entity.OrderDraft{}, entity.ErrDraftNotFound
	}
	copied := *draft
	copied.Items = append([]entity.DraftLineItem{}, draft.Items...)
	return copied, nil
}

// Delete descarta un borrador (cancelación explícita).
// Borrar un borrador inexistente es un no-op.
func (s *DraftStore) Delete(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftID)
}

// Count devuelve la cantidad de borradores vivos.
func (s *DraftStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

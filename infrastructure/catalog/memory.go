package catalog

import (
	"context"
	"sync"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.CatalogRepository = (*MemoryRepository)(nil)

// MemoryRepository is an in-memory CatalogRepository. It is the default
// backend for catalogs loaded from YAML files and the substitution point
// for tests. Records keep their insertion order so fuzzy matching is
// deterministic.
//
// MemoryRepository is safe for concurrent use.
type MemoryRepository struct {
	mu         sync.RWMutex
	boards     []domain.Board
	boardIdx   map[string]int
	components []domain.Component
	compIdx    map[string]int
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		boardIdx: make(map[string]int),
		compIdx:  make(map[string]int),
	}
}

// AddBoard stores a board record. A record with an existing ID replaces
// the previous one in place, keeping its original position.
func (r *MemoryRepository) AddBoard(board domain.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.boardIdx[board.ID]; ok {
		r.boards[i] = board
		return
	}
	r.boardIdx[board.ID] = len(r.boards)
	r.boards = append(r.boards, board)
}

// AddComponent stores a component record. A record with an existing ID
// replaces the previous one in place, keeping its original position.
func (r *MemoryRepository) AddComponent(component domain.Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.compIdx[component.ID]; ok {
		r.components[i] = component
		return
	}
	r.compIdx[component.ID] = len(r.components)
	r.components = append(r.components, component)
}

// GetBoard resolves ref to a board: exact ID match first, then fuzzy
// name match. Returns an error wrapping domain.ErrBoardNotFound when
// nothing matches.
func (r *MemoryRepository) GetBoard(_ context.Context, ref string) (domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.boardIdx[ref]; ok {
		return r.boards[i], nil
	}

	candidates := make([]candidate, len(r.boards))
	for i, b := range r.boards {
		candidates[i] = candidate{name: b.Name, index: i}
	}
	if i, ok := bestNameMatch(ref, candidates); ok {
		return r.boards[i], nil
	}

	return domain.Board{}, domain.NewBoardNotFound(ref)
}

// GetComponent resolves ref to a component: exact ID match first, then
// fuzzy name match. Returns an error wrapping domain.ErrComponentNotFound
// when nothing matches.
func (r *MemoryRepository) GetComponent(_ context.Context, ref string) (domain.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.compIdx[ref]; ok {
		return r.components[i], nil
	}

	candidates := make([]candidate, len(r.components))
	for i, c := range r.components {
		candidates[i] = candidate{name: c.Name, index: i}
	}
	if i, ok := bestNameMatch(ref, candidates); ok {
		return r.components[i], nil
	}

	return domain.Component{}, domain.NewComponentNotFound(ref)
}

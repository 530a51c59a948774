package ports

import (
	"context"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

// CatalogRepository resolves board and component references against the
// catalog. A reference may be an exact identifier or a name fragment;
// implementations fuzzy-match by name when the identifier does not match
// exactly. The catalog write path is outside the engine's scope.
type CatalogRepository interface {
	// GetBoard resolves ref to a board. Returns an error wrapping
	// domain.ErrBoardNotFound when nothing matches.
	GetBoard(ctx context.Context, ref string) (domain.Board, error)

	// GetComponent resolves ref to a component. Returns an error wrapping
	// domain.ErrComponentNotFound when nothing matches.
	GetComponent(ctx context.Context, ref string) (domain.Component, error)
}

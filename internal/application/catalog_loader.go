package application

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

// Catalog is a parsed, validated set of board and component records ready
// to seed a repository.
type Catalog struct {
	Boards     []domain.Board
	Components []domain.Component
}

// CatalogFile is the YAML schema for a catalog file. Records carry the
// same field layout as the domain types (the domain types declare yaml
// tags), with validation constraints applied after decoding.
type CatalogFile struct {
	// Boards are the board records in the file.
	Boards []domain.Board `yaml:"boards"`

	// Components are the component records in the file.
	Components []domain.Component `yaml:"components"`
}

// CatalogLoader parses, validates, and caches YAML catalog files.
// Parsed catalogs are cached by the SHA256 of their normalized content,
// and singleflight collapses concurrent loads of identical content into
// one parse.
//
// CatalogLoader is safe for concurrent use.
type CatalogLoader struct {
	// cache stores parsed catalogs indexed by content hash.
	cache map[string]*Catalog
	// cacheMu guards the cache map.
	cacheMu sync.RWMutex
	// sf collapses concurrent parses of identical content.
	sf singleflight.Group
}

// NewCatalogLoader creates a CatalogLoader ready for use.
func NewCatalogLoader() *CatalogLoader {
	return &CatalogLoader{cache: make(map[string]*Catalog)}
}

// LoadFromFile loads and validates a catalog from a YAML file. Identical
// file content parses once; later loads return the cached catalog.
// The returned catalog is shared and must not be mutated.
func (cl *CatalogLoader) LoadFromFile(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return cl.load(ctx, data)
}

// LoadFromReader loads and validates a catalog from any reader, applying
// the same content-hash caching as LoadFromFile.
// The returned catalog is shared and must not be mutated.
func (cl *CatalogLoader) LoadFromReader(ctx context.Context, r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return cl.load(ctx, data)
}

func (cl *CatalogLoader) load(_ context.Context, data []byte) (*Catalog, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	v, err, _ := cl.sf.Do(hash, func() (any, error) {
		// Re-check inside singleflight to close the race between the
		// cache read and group execution.
		if catalog, ok := cl.getCached(hash); ok {
			return catalog, nil
		}

		file, err := parseCatalogYAML(data)
		if err != nil {
			return nil, err
		}

		if err := cl.validateCatalog(file); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		catalog := &Catalog{Boards: file.Boards, Components: file.Components}
		cl.setCached(hash, catalog)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// parseCatalogYAML decodes catalog YAML in strict mode so typos in field
// names fail instead of being silently dropped.
func parseCatalogYAML(data []byte) (*CatalogFile, error) {
	var file CatalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("YAML decode failed: %w", err)
	}
	return &file, nil
}

// validateCatalog applies record-level constraints that the YAML schema
// cannot express: required identifiers, unique IDs within each section,
// sane voltage and current figures.
func (cl *CatalogLoader) validateCatalog(file *CatalogFile) error {
	boardIDs := make(map[string]struct{}, len(file.Boards))
	for i, board := range file.Boards {
		if board.ID == "" || board.Name == "" {
			return fmt.Errorf("board %d: id and name are required", i)
		}
		if _, dup := boardIDs[board.ID]; dup {
			return fmt.Errorf("duplicate board ID %q", board.ID)
		}
		boardIDs[board.ID] = struct{}{}

		if board.IOVoltage <= 0 {
			return fmt.Errorf("board %q: io_voltage must be positive", board.ID)
		}
		if board.MaxCurrentPerPin < 0 || board.MaxCurrentTotal < 0 {
			return fmt.Errorf("board %q: current limits cannot be negative", board.ID)
		}
	}

	componentIDs := make(map[string]struct{}, len(file.Components))
	for i, component := range file.Components {
		if component.ID == "" || component.Name == "" {
			return fmt.Errorf("component %d: id and name are required", i)
		}
		if _, dup := componentIDs[component.ID]; dup {
			return fmt.Errorf("duplicate component ID %q", component.ID)
		}
		componentIDs[component.ID] = struct{}{}

		if component.Voltage.Min > component.Voltage.Max {
			return fmt.Errorf("component %q: voltage min %.2f exceeds max %.2f",
				component.ID, component.Voltage.Min, component.Voltage.Max)
		}
		if component.MaxCurrent < 0 || component.OperatingCurrent < 0 {
			return fmt.Errorf("component %q: current draw cannot be negative", component.ID)
		}
	}

	return nil
}

func (cl *CatalogLoader) getCached(hash string) (*Catalog, bool) {
	cl.cacheMu.RLock()
	defer cl.cacheMu.RUnlock()
	catalog, ok := cl.cache[hash]
	return catalog, ok
}

func (cl *CatalogLoader) setCached(hash string, catalog *Catalog) {
	cl.cacheMu.Lock()
	defer cl.cacheMu.Unlock()
	cl.cache[hash] = catalog
}

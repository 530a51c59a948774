package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// CheckerConfig controls the orchestrator's caching and bulk evaluation
// behavior. Configuration is immutable after checker creation.
type CheckerConfig struct {
	// CacheTTL is how long computed checks stay in the result cache.
	// Zero disables expiry; the cache backend may still evict.
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl" validate:"min=0"`

	// BulkConcurrency bounds how many component references a bulk call
	// evaluates at once.
	BulkConcurrency int `yaml:"bulk_concurrency" json:"bulk_concurrency" validate:"min=1"`
}

// DefaultCheckerConfig returns the production defaults: one hour of
// result caching and bulk batches of 10.
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		CacheTTL:        time.Hour,
		BulkConcurrency: 10,
	}
}

// Checker is the compatibility orchestrator. It resolves board and
// component references through the catalog repository, consults the
// result cache before and after evaluation, fans the rule evaluators out,
// and aggregates their outcomes deterministically.
//
// The cache is read-through but not single-flight: concurrent requests
// for the same pair during a miss may each recompute and each write.
// Recomputation is pure and idempotent, so the duplicate work is an
// accepted tradeoff rather than a race.
//
// Checker is safe for concurrent use.
type Checker struct {
	repo    ports.CatalogRepository
	cache   ports.CacheStore
	rules   []ports.Rule
	logger  *zap.Logger
	metrics ports.MetricsCollector
	config  CheckerConfig
	tracer  trace.Tracer
}

// NewChecker creates a Checker with the given collaborators. The rules
// slice defines the canonical evaluation order used for severity
// tiebreaks; pass rules in the order their penalties should rank.
// Every rule is validated up front so a misconfigured rule fails fast at
// construction instead of at evaluation time.
//
// The logger and metrics collector may be nil; a nop logger and nop
// metrics are substituted. The repository, cache, and at least one rule
// are required.
func NewChecker(
	repo ports.CatalogRepository,
	cache ports.CacheStore,
	rules []ports.Rule,
	logger *zap.Logger,
	metrics ports.MetricsCollector,
	config CheckerConfig,
) (*Checker, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("at least one rule is required")
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Checker{
		repo:    repo,
		cache:   cache,
		rules:   rules,
		logger:  logger,
		metrics: metrics,
		config:  config,
		tracer:  otel.Tracer("compatibility-checker"),
	}, nil
}

// Check evaluates the compatibility of a component with a board.
// Both references are resolved through the catalog repository (exact ID
// first, fuzzy name otherwise); an unresolvable reference surfaces as an
// error wrapping domain.ErrNotFound. On a cache hit the stored check is
// returned unchanged. On a miss the rules run concurrently, the outcomes
// are aggregated in canonical order, and the result is written back to
// the cache best-effort before being returned.
func (c *Checker) Check(ctx context.Context, boardRef, componentRef string) (domain.CompatibilityCheck, error) {
	ctx, span := c.tracer.Start(ctx, "Checker.Check",
		trace.WithAttributes(
			attribute.String("board.ref", boardRef),
			attribute.String("component.ref", componentRef),
		),
	)
	defer span.End()

	start := time.Now()

	board, component, err := c.resolve(ctx, boardRef, componentRef)
	if err != nil {
		span.RecordError(err)
		return domain.CompatibilityCheck{}, err
	}

	key := CacheKey(board.ID, component.ID)
	if check, ok := c.cacheLookup(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		c.metrics.RecordCacheHit(true)
		c.metrics.RecordLatency("check", time.Since(start))
		return check, nil
	}
	c.metrics.RecordCacheHit(false)
	span.SetAttributes(attribute.Bool("cache.hit", false))

	check := Aggregate(c.evaluate(ctx, board, component))

	c.cacheStore(ctx, key, check)

	outcome := "incompatible"
	if check.Compatible {
		outcome = "compatible"
	}
	c.metrics.RecordCheck(outcome, check.Score)
	c.metrics.RecordLatency("check", time.Since(start))

	span.SetAttributes(
		attribute.Bool("check.compatible", check.Compatible),
		attribute.Int("check.score", check.Score),
		attribute.Int("check.issues", len(check.Issues)),
	)

	return check, nil
}

// Score returns only the compatibility score for a pairing. Any failure,
// including unresolvable references, yields 0 rather than an error; the
// method exists for ranking use cases where a bad reference should sink
// to the bottom instead of failing the ranking.
func (c *Checker) Score(ctx context.Context, boardRef, componentRef string) int {
	check, err := c.Check(ctx, boardRef, componentRef)
	if err != nil {
		c.logger.Debug("score defaulted to zero",
			zap.String("board_ref", boardRef),
			zap.String("component_ref", componentRef),
			zap.Error(err),
		)
		return 0
	}
	return check.Score
}

// BulkCheck evaluates many components against one board with bounded
// concurrency. Failures are isolated per item: a reference that does not
// resolve, or an evaluation that fails, yields the synthetic failed check
// for that item only. The call itself never fails; the returned map has
// one entry per distinct reference.
func (c *Checker) BulkCheck(ctx context.Context, boardRef string, componentRefs []string) map[string]domain.CompatibilityCheck {
	ctx, span := c.tracer.Start(ctx, "Checker.BulkCheck",
		trace.WithAttributes(
			attribute.String("board.ref", boardRef),
			attribute.Int("bulk.size", len(componentRefs)),
		),
	)
	defer span.End()

	start := time.Now()

	results := make(map[string]domain.CompatibilityCheck, len(componentRefs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.BulkConcurrency)

	for _, ref := range componentRefs {
		ref := ref
		g.Go(func() error {
			check, err := c.Check(gctx, boardRef, ref)
			if err != nil {
				c.logger.Warn("bulk item failed",
					zap.String("board_ref", boardRef),
					zap.String("component_ref", ref),
					zap.Error(err),
				)
				check = domain.FailedCheck()
			}

			mu.Lock()
			results[ref] = check
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures became synthetic checks.
	_ = g.Wait()

	c.metrics.RecordLatency("bulk_check", time.Since(start))

	return results
}

// resolve fetches the board and component concurrently. The two catalog
// reads are independent, so a slow board lookup does not serialize the
// component lookup.
func (c *Checker) resolve(ctx context.Context, boardRef, componentRef string) (domain.Board, domain.Component, error) {
	var (
		board     domain.Board
		component domain.Component
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := c.repo.GetBoard(gctx, boardRef)
		if err != nil {
			return err
		}
		board = b
		return nil
	})
	g.Go(func() error {
		comp, err := c.repo.GetComponent(gctx, componentRef)
		if err != nil {
			return err
		}
		component = comp
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Board{}, domain.Component{}, err
	}
	return board, component, nil
}

// evaluate runs every rule concurrently and re-assembles the outcomes
// into the canonical rule order. Rules are pure, so parallel evaluation
// with index-captured results is equivalent to sequential evaluation.
func (c *Checker) evaluate(ctx context.Context, board domain.Board, component domain.Component) []domain.RuleOutcome {
	outcomes := make([]domain.RuleOutcome, len(c.rules))

	var wg sync.WaitGroup
	for i, rule := range c.rules {
		i, rule := i, rule
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = rule.Evaluate(ctx, board, component)
		}()
	}
	wg.Wait()

	return outcomes
}

// cacheLookup reads a cached check. Backend errors and corrupt payloads
// are logged and treated as misses so the cache can never fail a
// request.
func (c *Checker) cacheLookup(ctx context.Context, key string) (domain.CompatibilityCheck, bool) {
	data, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return domain.CompatibilityCheck{}, false
	}
	if !found {
		return domain.CompatibilityCheck{}, false
	}

	var check domain.CompatibilityCheck
	if err := json.Unmarshal(data, &check); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return domain.CompatibilityCheck{}, false
	}
	return check, true
}

// cacheStore writes a computed check back to the cache best-effort.
// Failures are logged and swallowed; the response does not wait on
// anything beyond the write call itself.
func (c *Checker) cacheStore(ctx context.Context, key string, check domain.CompatibilityCheck) {
	data, err := json.Marshal(check)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.config.CacheTTL); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// nopMetrics is the default MetricsCollector when none is injected.
type nopMetrics struct{}

func (nopMetrics) RecordCheck(string, int)             {}
func (nopMetrics) RecordCacheHit(bool)                 {}
func (nopMetrics) RecordLatency(string, time.Duration) {}

// Command compatcheck evaluates hardware compatibility from the command
// line: it loads a YAML catalog, resolves the given board and component
// references, and prints the resulting check as JSON.
//
// Usage:
//
//	compatcheck -catalog catalog.yaml -board "arduino uno" -component hc-sr04
//	compatcheck -catalog catalog.yaml -board esp32 -component bme280,sg90,neopixel
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SaiAkhilM/protobuddy/infrastructure/cache"
	"github.com/SaiAkhilM/protobuddy/infrastructure/catalog"
	"github.com/SaiAkhilM/protobuddy/infrastructure/rules"
	"github.com/SaiAkhilM/protobuddy/internal/application"
)

func main() {
	var (
		catalogPath  = flag.String("catalog", "catalog.yaml", "Path to the YAML catalog file")
		boardRef     = flag.String("board", "", "Board ID or name")
		componentRef = flag.String("component", "", "Component ID or name; comma-separate for a bulk check")
		scoreOnly    = flag.Bool("score", false, "Print only the numeric score")
	)
	flag.Parse()

	if *boardRef == "" || *componentRef == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	loader := application.NewCatalogLoader()
	cat, err := loader.LoadFromFile(ctx, *catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	repo := catalog.NewMemoryRepository()
	for _, b := range cat.Boards {
		repo.AddBoard(b)
	}
	for _, c := range cat.Components {
		repo.AddComponent(c)
	}

	ruleSet, err := rules.DefaultRules()
	if err != nil {
		log.Fatalf("Failed to build rules: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	checker, err := application.NewChecker(
		repo,
		cache.NewMemoryCache(time.Hour, 10*time.Minute),
		ruleSet,
		logger,
		nil,
		application.DefaultCheckerConfig(),
	)
	if err != nil {
		log.Fatalf("Failed to build checker: %v", err)
	}

	refs := strings.Split(*componentRef, ",")
	for i, ref := range refs {
		refs[i] = strings.TrimSpace(ref)
	}

	switch {
	case *scoreOnly && len(refs) == 1:
		fmt.Println(checker.Score(ctx, *boardRef, refs[0]))

	case len(refs) == 1:
		check, err := checker.Check(ctx, *boardRef, refs[0])
		if err != nil {
			log.Fatalf("Check failed: %v", err)
		}
		printJSON(check)

	default:
		printJSON(checker.BulkCheck(ctx, *boardRef, refs))
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

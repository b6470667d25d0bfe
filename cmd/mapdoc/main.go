package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/export"
	"github.com/laitim2001/ai-document-extraction/internal/format"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/mapping"
	"github.com/laitim2001/ai-document-extraction/internal/pipeline"
	repo "github.com/laitim2001/ai-document-extraction/internal/repository"
	"github.com/laitim2001/ai-document-extraction/internal/resolver"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
	"github.com/laitim2001/ai-document-extraction/internal/vocab"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		input    = flag.String("input", "", "extraction JSON file or directory of them (required)")
		out      = flag.String("out", "", "output directory for mapped records (defaults to input's parent)")
		cfgPath  = flag.String("config", "", "optional mapping-config JSON document to import before processing")
		termsOut = flag.String("terms-out", "", "optional XLSX path for learned vocabulary")
	)
	flag.Parse()

	if *input == "" {
		printError("Error: --input is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Dir(*input)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	db, err := repo.InitDatabase(ctx, cfg.Database, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	catalogCache := cache.New(cfg.Cache.TTL)
	orgsRepo := repo.NewOrganizationRepository(db.Client, catalogCache, logger)
	formatsRepo := repo.NewFormatRepository(db.Client, catalogCache, logger)
	configsRepo := repo.NewConfigRepository(db.Client, catalogCache, logger)
	termsRepo := repo.NewTermRepository(db.Client, logger)

	engine := transform.NewEngine()
	processor := pipeline.NewProcessor(
		issuer.NewMatcher(orgsRepo, catalogCache, logger),
		format.NewMatcher(formatsRepo, catalogCache, logger),
		resolver.NewResolver(configsRepo, catalogCache, logger),
		mapping.NewApplier(engine, logger),
		vocab.NewLearner(termsRepo, logger),
		logger,
	)

	if *cfgPath != "" {
		imported, err := importConfig(ctx, *cfgPath, engine, configsRepo)
		if err != nil {
			logger.Error("failed to import mapping config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
		logger.Info("mapping config imported", "config_id", imported.ID, "name", imported.Name)
	}

	inputs, err := collectInputs(*input)
	if err != nil {
		logger.Error("failed to list inputs", "input", *input, "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		printError("Error: no .json files under %s\n", *input)
		os.Exit(1)
	}

	processed := 0
	failures := 0
	needsReview := 0
	unidentified := 0
	formatsSeen := map[uuid.UUID]bool{}

	for _, path := range inputs {
		raw, err := loadExtraction(path)
		if err != nil {
			logger.Error("failed to read extraction", "path", path, "error", err)
			failures++
			continue
		}

		result, err := processor.Process(ctx, raw)
		if err != nil {
			logger.Error("failed to process document", "path", path, "error", err)
			failures++
			continue
		}
		processed++
		switch result.Record.Status {
		case constants.DocumentNeedsReview:
			needsReview++
		case constants.DocumentUnidentified:
			unidentified++
		}
		if result.Format != nil {
			formatsSeen[result.Format.Format.ID] = true
		}

		if err := writeRecord(*out, path, result.Record); err != nil {
			logger.Error("failed to write mapped record", "path", path, "error", err)
			failures++
		}
	}

	if *termsOut != "" {
		if err := exportTerms(ctx, *termsOut, formatsSeen, termsRepo, logger); err != nil {
			logger.Error("failed to export vocabulary", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch mapping complete",
		"documents", len(inputs),
		"processed", processed,
		"needs_review", needsReview,
		"unidentified", unidentified,
		"failures", failures)

	fmt.Printf("Batch mapping complete!\n")
	fmt.Printf("- Documents: %d\n", len(inputs))
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Needs review: %d\n", needsReview)
	fmt.Printf("- Unidentified: %d\n", unidentified)
	fmt.Printf("- Failures: %d\n", failures)
	if *termsOut != "" {
		fmt.Printf("- Vocabulary: %s\n", *termsOut)
	}
}

// importConfig validates a JSON config document against the config
// schema and the semantic rules, then stores it as active.
func importConfig(ctx context.Context, path string, engine *transform.Engine, configs repo.ConfigRepository) (*entity.FieldMappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := mapping.ValidateConfigDocument(data); err != nil {
		return nil, err
	}
	cfg, err := mapping.DecodeConfigDocument(data)
	if err != nil {
		return nil, err
	}
	cfg.IsActive = true
	if err := mapping.ValidateConfig(cfg, engine); err != nil {
		return nil, err
	}
	return configs.CreateMapping(ctx, cfg)
}

func collectInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(input, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func loadExtraction(path string) (*entity.RawExtraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw entity.RawExtraction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if raw.DocumentID == uuid.Nil {
		raw.DocumentID = uuid.New()
	}
	if raw.Fields == nil {
		raw.Fields = map[string]any{}
	}
	return &raw, nil
}

func writeRecord(dir, inputPath string, record *entity.MappedRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), ".json")
	return os.WriteFile(filepath.Join(dir, base+".mapped.json"), data, 0644)
}

// exportTerms writes one workbook per format next to termsOut, or a
// single workbook when only one format was seen.
func exportTerms(ctx context.Context, out string, formats map[uuid.UUID]bool, terms repo.TermRepository, logger *slog.Logger) error {
	exporter := export.NewService(terms, logger)

	ids := make([]uuid.UUID, 0, len(formats))
	for id := range formats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		xlsx, err := exporter.ExportTermsXLSX(ctx, id)
		if err != nil {
			return err
		}
		path := out
		if len(ids) > 1 {
			ext := filepath.Ext(out)
			path = strings.TrimSuffix(out, ext) + "-" + id.String()[:8] + ext
		}
		if err := os.WriteFile(path, xlsx, 0644); err != nil {
			return err
		}
		logger.Info("vocabulary exported", "format_id", id, "path", path)
	}
	return nil
}

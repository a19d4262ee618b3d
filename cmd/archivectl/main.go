// Command archivectl manages the transcript archive from the command line
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-archive/internal/adapter/repository"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/cache"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/database"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/external/assemblyai"
	"github.com/johnquangdev/transcript-archive/internal/usecase/ingest"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
	"github.com/johnquangdev/transcript-archive/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/logger"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "archivectl",
	Short:         "Manage the file registry and transcript store",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// archive bundles the services a command needs. The caller must defer Close.
type archive struct {
	db          *gorm.DB
	store       cache.Store
	registry    registry.Service
	transcripts transcript.Service
	pipeline    *ingest.Pipeline
	assembly    *assemblyai.Client
	logger      *zap.Logger
}

// newArchive reads the configuration and wires the services
func newArchive(ctx context.Context) (*archive, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Server.Environment)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store, err := cache.NewStore(ctx, cfg)
	if err != nil {
		_ = database.CloseDB(db)
		return nil, fmt.Errorf("initializing cache: %w", err)
	}

	confidenceCache := cache.NewConfidenceCache(store, cfg.Cache.TTL, log)
	m := metrics.NewNop()

	registrySvc := registry.NewRegistryService(repository.NewFileRepository(db), confidenceCache, m, log)
	transcriptSvc := transcript.NewTranscriptService(repository.NewTranscriptRepository(db), confidenceCache, m, log)

	return &archive{
		db:          db,
		store:       store,
		registry:    registrySvc,
		transcripts: transcriptSvc,
		pipeline:    ingest.NewPipeline(registrySvc, transcriptSvc, cfg.Ingest, m, log),
		assembly:    assemblyai.NewClient(cfg.Assembly, log),
		logger:      log,
	}, nil
}

// Close releases the cache and the database connection
func (a *archive) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = database.CloseDB(a.db)
	_ = a.logger.Sync()
}

// withArchive runs fn against a freshly wired archive
func withArchive(cmd *cobra.Command, fn func(ctx context.Context, a *archive) error) error {
	ctx := cmd.Context()
	a, err := newArchive(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/johnquangdev/transcript-archive/internal/adapter/repository"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/cache"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/database"
	"github.com/johnquangdev/transcript-archive/internal/usecase/ingest"
	"github.com/johnquangdev/transcript-archive/internal/usecase/registry"
	"github.com/johnquangdev/transcript-archive/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/logger"
	"github.com/johnquangdev/transcript-archive/pkg/metrics"
)

// seedPathPrefix marks rows created by this script
const seedPathPrefix = "/seed/"

func main() {
	log.Println("🚀 Seeding transcript archive...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.Open(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	m := metrics.NewNop()
	registrySvc := registry.NewRegistryService(repository.NewFileRepository(db), cache.Nop{}, m, appLogger)
	transcriptSvc := transcript.NewTranscriptService(repository.NewTranscriptRepository(db), cache.Nop{}, m, appLogger)
	pipeline := ingest.NewPipeline(registrySvc, transcriptSvc, cfg.Ingest, m, appLogger)

	log.Println("🗑️  Cleaning up existing seed files...")
	// The foreign key cascades to file_transcripts.
	if err := db.Where("file_path LIKE ?", seedPathPrefix+"%").Delete(&entities.File{}).Error; err != nil {
		log.Fatalf("Failed to clean up seed files: %v", err)
	}

	samples := []struct {
		Name       string
		Reference  string
		Hypothesis string
		Payload    string
	}{
		{
			Name:       "standup.mp3",
			Reference:  "the quick brown fox jumps over the lazy dog",
			Hypothesis: "the quick brown box jumps over a lazy dog",
		},
		{
			Name:    "interview.wav",
			Payload: `{"hello": 0.9, "world": 0.3, "foo": 0.5}`,
		},
		{
			Name: "lecture.flac",
		},
	}

	ctx := context.Background()
	for i, s := range samples {
		res, err := pipeline.Ingest(ctx, ingest.Item{
			FilePath:       seedPathPrefix + s.Name,
			OriginalName:   s.Name,
			TranscriptPath: fmt.Sprintf("%stranscripts/%d.txt", seedPathPrefix, i+1),
			Payload:        entities.ConfidencePayload(s.Payload),
		})
		if err != nil {
			log.Printf("❌ Failed to ingest %s: %v", s.Name, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 File %d: %s\n", i+1, s.Name)
		fmt.Printf("File ID:        %d\n", res.File.ID)
		fmt.Printf("Transcript ID:  %d\n", res.Transcript.ID)

		if s.Reference != "" {
			rate, err := pipeline.ScoreTranscript(ctx, res.Transcript.ID, s.Reference, s.Hypothesis)
			if err != nil {
				log.Printf("❌ Failed to score %s: %v", s.Name, err)
				continue
			}
			fmt.Printf("WER:            %.4f\n", rate)
		}
	}

	log.Println("✅ Seed data created")
	log.Printf("🧹 To clean up, run: DELETE FROM files WHERE file_path LIKE '%s%%'", seedPathPrefix)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/usecase/ingest"
)

var ingestWorkers int

// manifestEntry is one line item of an ingest manifest
type manifestEntry struct {
	FilePath       string          `json:"file_path"`
	OriginalName   string          `json:"original_name"`
	TranscriptPath string          `json:"transcript_path"`
	WER            json.RawMessage `json:"wer,omitempty"`
}

type ingestReport struct {
	FilePath     string `json:"file_path"`
	FileID       int64  `json:"file_id,omitempty"`
	TranscriptID int64  `json:"transcript_id,omitempty"`
	Error        string `json:"error,omitempty"`
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <manifest.json>",
	Short: "Register files and attach their transcripts from a JSON manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := readManifest(args[0])
		if err != nil {
			return err
		}

		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			results := a.pipeline.IngestBatch(ctx, items, ingestWorkers)

			reports := make([]ingestReport, len(results))
			failed := 0
			for i, r := range results {
				reports[i].FilePath = r.Item.FilePath
				if r.Err != nil {
					failed++
					reports[i].Error = r.Err.Error()
					continue
				}
				reports[i].FileID = r.Result.File.ID
				reports[i].TranscriptID = r.Result.Transcript.ID
			}
			if err := printJSON(cmd, reports); err != nil {
				return err
			}

			a.logger.Info("ingest finished",
				zap.Int("items", len(items)),
				zap.Int("failed", failed),
			)
			if failed > 0 {
				return fmt.Errorf("%d of %d items failed", failed, len(items))
			}
			return nil
		})
	},
}

func readManifest(path string) ([]ingest.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var entries []manifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	items := make([]ingest.Item, len(entries))
	for i, e := range entries {
		items[i] = ingest.Item{
			FilePath:       e.FilePath,
			OriginalName:   e.OriginalName,
			TranscriptPath: e.TranscriptPath,
		}
		// json.RawMessage keeps the payload bytes exactly as written in the manifest
		if payload := entities.ConfidencePayload(e.WER); payload.Present() {
			items[i].Payload = payload
		}
	}
	return items, nil
}

func init() {
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", 4, "concurrent ingest workers")
	rootCmd.AddCommand(ingestCmd)
}

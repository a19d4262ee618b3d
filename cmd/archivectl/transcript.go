package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/transcript-archive/internal/adapter/presenter"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/infrastructure/external/assemblyai"
)

var (
	werFile    string
	threshold  float64
	waitImport bool
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Manage transcripts and their confidence payloads",
}

var transcriptAttachCmd = &cobra.Command{
	Use:   "attach <file-id> <transcript-path>",
	Short: "Attach a transcript to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseID(args[0])
		if err != nil {
			return err
		}
		payload, err := readPayload(werFile)
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			t, err := a.transcripts.Attach(ctx, fileID, args[1], payload)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToTranscriptResponse(t))
		})
	},
}

var transcriptListCmd = &cobra.Command{
	Use:   "list <file-id>",
	Short: "List the transcripts of a file, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			ts, err := a.transcripts.ListForFile(ctx, fileID)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToTranscriptListResponse(fileID, ts))
		})
	},
}

var transcriptGetCmd = &cobra.Command{
	Use:   "get <transcript-id>",
	Short: "Show a transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			t, err := a.transcripts.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToTranscriptResponse(t))
		})
	},
}

var transcriptSpansCmd = &cobra.Command{
	Use:   "spans <transcript-id>",
	Short: "List spans scored below --threshold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			spans, err := a.transcripts.LowConfidenceSpans(ctx, id, threshold)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToLowConfidenceResponse(id, threshold, spans))
		})
	},
}

var transcriptUpdateCmd = &cobra.Command{
	Use:   "update <transcript-id>",
	Short: "Replace the confidence payload with the contents of --wer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if werFile == "" {
			return fmt.Errorf("--wer is required")
		}
		payload, err := readPayload(werFile)
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			if err := a.transcripts.UpdateConfidence(ctx, id, payload); err != nil {
				return err
			}
			t, err := a.transcripts.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToTranscriptResponse(t))
		})
	},
}

var transcriptImportCmd = &cobra.Command{
	Use:   "import <file-id> <assemblyai-transcript-id>",
	Short: "Attach an AssemblyAI transcript using its per-word confidences",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			fetch := a.assembly.FetchConfidence
			if waitImport {
				fetch = a.assembly.AwaitConfidence
			}
			payload, err := fetch(ctx, args[1])
			if err != nil {
				return err
			}

			t, err := a.pipeline.RecordTranscript(ctx, fileID, assemblyai.PathScheme+args[1], payload)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToTranscriptResponse(t))
		})
	},
}

// readPayload loads a confidence document; "-" reads stdin and "" means no payload
func readPayload(path string) (entities.ConfidencePayload, error) {
	if path == "" {
		return nil, nil
	}

	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading confidence payload: %w", err)
	}
	return entities.ConfidencePayload(raw), nil
}

func init() {
	transcriptAttachCmd.Flags().StringVar(&werFile, "wer", "", "confidence payload JSON file (- for stdin)")
	transcriptUpdateCmd.Flags().StringVar(&werFile, "wer", "", "confidence payload JSON file (- for stdin)")
	transcriptImportCmd.Flags().BoolVar(&waitImport, "wait", false, "poll until the transcript is ready")
	transcriptSpansCmd.Flags().Float64Var(&threshold, "threshold", 0.5, "report spans scored strictly below this value")

	transcriptCmd.AddCommand(
		transcriptAttachCmd,
		transcriptListCmd,
		transcriptGetCmd,
		transcriptSpansCmd,
		transcriptUpdateCmd,
		transcriptImportCmd,
	)
	rootCmd.AddCommand(transcriptCmd)
}

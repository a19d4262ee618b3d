package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	referencePath  string
	hypothesisPath string
)

var scoreCmd = &cobra.Command{
	Use:   "score <transcript-id>",
	Short: "Score a transcript against a reference text and store per-word confidence",
	Long: `score aligns the hypothesis text with the reference at word level,
stores a list-form confidence payload (1 for matched words, 0 otherwise)
on the transcript and prints the word error rate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		reference, err := os.ReadFile(referencePath)
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
		hypothesis, err := os.ReadFile(hypothesisPath)
		if err != nil {
			return fmt.Errorf("reading hypothesis: %w", err)
		}

		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			rate, err := a.pipeline.ScoreTranscript(ctx, id, string(reference), string(hypothesis))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transcript %d: WER %.4f\n", id, rate)
			return nil
		})
	},
}

func init() {
	scoreCmd.Flags().StringVar(&referencePath, "reference", "", "reference text file")
	scoreCmd.Flags().StringVar(&hypothesisPath, "hypothesis", "", "transcribed text file")
	_ = scoreCmd.MarkFlagRequired("reference")
	_ = scoreCmd.MarkFlagRequired("hypothesis")
	rootCmd.AddCommand(scoreCmd)
}

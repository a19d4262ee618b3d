package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/transcript-archive/internal/adapter/presenter"
	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

var fileExtension string

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage registered files",
}

var fileRegisterCmd = &cobra.Command{
	Use:   "register <path> <name>",
	Short: "Register a file; the extension is taken from the name unless --ext is given",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			var (
				f   *entities.File
				err error
			)
			if fileExtension == "" {
				f, err = a.registry.RegisterUpload(ctx, args[0], args[1])
			} else {
				f, err = a.registry.Register(ctx, args[0], args[1], fileExtension)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToFileResponse(f))
		})
	},
}

var fileGetCmd = &cobra.Command{
	Use:   "get <file-id>",
	Short: "Show a registered file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			f, err := a.registry.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToFileResponse(f))
		})
	},
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete <file-id>",
	Short: "Delete a file and all of its transcripts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withArchive(cmd, func(ctx context.Context, a *archive) error {
			removed, err := a.registry.Delete(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, presenter.ToDeleteFileResponse(id, removed))
		})
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}

func init() {
	fileRegisterCmd.Flags().StringVar(&fileExtension, "ext", "", "file extension (alphanumeric)")
	fileCmd.AddCommand(fileRegisterCmd, fileGetCmd, fileDeleteCmd)
	rootCmd.AddCommand(fileCmd)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Abraxas-365/internmatch/pkg/config"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/spf13/cobra"
)

var (
	importFilePath string
	importS3Key    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import internships from a CSV file or an S3 object",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (importFilePath == "") == (importS3Key == "") {
			return errors.New("exactly one of --file or --s3-key is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Storage.Driver == config.StorageMemory {
			logx.Warn("Importing into in-memory storage, rows are discarded when the command exits")
		}

		container, err := NewContainer(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer container.Close()

		var result *internship.ImportResponse
		if importFilePath != "" {
			result, err = importFile(cmd.Context(), container, importFilePath)
		} else {
			result, err = importS3(cmd.Context(), container, importS3Key)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFilePath, "file", "f", "", "local CSV file")
	importCmd.Flags().StringVar(&importS3Key, "s3-key", "", "object key in the configured AWS bucket")
}

func importFile(ctx context.Context, container *Container, path string) (*internship.ImportResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return container.InternshipService.ImportCSV(ctx, f)
}

func importS3(ctx context.Context, container *Container, key string) (*internship.ImportResponse, error) {
	source, err := container.S3Source(ctx)
	if err != nil {
		return nil, err
	}

	body, err := source.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return container.InternshipService.ImportCSV(ctx, body)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"roster-manager/core/config"
	"roster-manager/core/fileio"
	"roster-manager/core/importer"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/storage"
	"roster-manager/feature/records/schemas"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the export command
	exportFormat string
	exportOut    string
	exportUpload bool
)

// exportCmd writes the stored records of a schema to a file or object storage.
var exportCmd = &cobra.Command{
	Use:   "export [baseName]",
	Short: "Export stored records as JSON, CSV or XLSX",
	Long: `Export the stored records of a schema. Columns follow the schema key order.

Examples:
  # Write instructors.csv in the current directory
  export instructors

  # Write to stdout
  export positions --format json --out -

  # Upload to the configured bucket under exports/<baseName>/
  export applicants --format xlsx --upload`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(importer.FileTypeCSV), "Output format: csv, json or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path, '-' for stdout (default <baseName>.<format>)")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Upload to object storage instead of writing a file")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	baseName := args[0]

	ft, err := importer.ParseFileType(exportFormat)
	if err != nil {
		return err
	}

	sch, ok := schemas.NewRegistry().Get(baseName)
	if !ok {
		return fmt.Errorf("%w: %s", reconcile.ErrUnknownSchema, baseName)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	recordStore, err := openRecordStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	records, err := recordStore.LoadRecords(ctx, baseName)
	if err != nil {
		return err
	}

	data, err := fileio.EncodeBytes(ft, sch, records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", baseName, err)
	}

	if exportUpload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
			return err
		}

		key := storage.ExportKey(baseName, string(ft), time.Now())
		if _, err := storage.Upload(ctx, client, cfg.Storage.Bucket, key, data, fileio.ContentType(ft)); err != nil {
			return err
		}
		l.Info("Uploaded export",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("key", key),
			zap.Int("records", len(records)))
		return nil
	}

	out := exportOut
	if out == "" {
		out = fileio.FileName(baseName, ft)
	}
	if out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	l.Info("Wrote export", zap.String("path", out), zap.Int("records", len(records)))
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"roster-manager/core/config"
	"roster-manager/core/database"
	"roster-manager/core/logger"
	"roster-manager/core/storage"
	"roster-manager/feature/integrity"
	"roster-manager/feature/records/schemas"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and stored records",
	Long:  `Checks the export folder structure of the bucket, the record table and the stored records.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix export folders",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the record table",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// recordsCmd represents the integrity records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Validate stored records against their schemas",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing export folders")

	integrityCmd.AddCommand(structureCmd)
	integrityCmd.AddCommand(databaseCmd)
	integrityCmd.AddCommand(recordsCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, runStructure, runDatabase, runRecords bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// The structure check works without a database
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(schemas.NewRegistry(), client, cfg.Storage.Bucket, logg, db)

	if runStructure {
		logg.Info("Checking export folders...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run 'integrity structure --fix' to create missing folders.")
			}
		}
	}

	if runDatabase {
		logg.Info("Checking record table...")
		report, err := svc.CheckDatabase()
		switch {
		case err != nil:
			logg.Error("Database check failed", zap.Error(err))
		case report.TableMissing:
			logg.Warn("Record table is missing, start the server or run an import to create it", zap.String("table", report.Table))
		case report.Matched:
			logg.Info("Record table matches the record model.", zap.String("table", report.Table))
		default:
			logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runRecords {
		logg.Info("Checking stored records...")
		reports, err := svc.CheckRecords(ctx)
		if err != nil {
			logg.Error("Records check failed", zap.Error(err))
			return
		}
		for _, r := range reports {
			if r.Valid {
				logg.Info("Stored records are valid", zap.String("base_name", r.BaseName), zap.Int("total", r.Total))
				continue
			}
			for _, v := range r.Violations {
				logg.Warn("Invalid stored record", zap.String("base_name", r.BaseName), zap.String("violation", v.String()))
			}
			if len(r.DuplicateKeys) > 0 {
				logg.Warn("Repeated primary keys", zap.String("base_name", r.BaseName), zap.Strings("keys", r.DuplicateKeys))
			}
		}
	}
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"roster-manager/core/config"
	"roster-manager/core/database"
	"roster-manager/core/fileio"
	"roster-manager/core/importer"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/store"
	"roster-manager/core/validate"
	"roster-manager/feature/records/schemas"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	lenientImport bool
	applyImport   bool
	purgeImport   bool
	dryRunImport  bool
	removalsFlag  string
	yesConfirm    bool
)

// importCmd normalizes a spreadsheet and reconciles it with the stored records.
var importCmd = &cobra.Command{
	Use:   "import [baseName] [file]",
	Short: "Import a spreadsheet and diff it against stored records",
	Long: `Import a JSON, CSV or XLSX file, map its columns onto the named schema,
validate it and report which records are new, duplicate or modified.

Nothing is written unless --apply is given.

Examples:
  # Report only
  import instructors instructors.xlsx

  # Keep rows whose columns are all unknown
  import instructors instructors.csv --lenient

  # List stored records missing from the file
  import instructors instructors.csv --removals report

  # Write new and modified records (with interactive confirmation)
  import instructors instructors.csv --apply

  # Write and delete records missing from the file, non-interactive
  import instructors instructors.csv --apply --purge --yes`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&lenientImport, "lenient", false, "Keep rows in which no column matches the schema")
	importCmd.Flags().BoolVar(&applyImport, "apply", false, "Write new and modified records to the store")
	importCmd.Flags().BoolVar(&purgeImport, "purge", false, "With --apply, delete stored records missing from the file")
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	importCmd.Flags().StringVar(&removalsFlag, "removals", "", "Removal policy: ignore or report (default from config)")
	importCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	baseName, path := args[0], args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	sch, ok := schemas.NewRegistry().Get(baseName)
	if !ok {
		return fmt.Errorf("%w: %s", reconcile.ErrUnknownSchema, baseName)
	}

	// Step 1: Decode and normalize
	src, err := fileio.DecodeFile(path)
	if err != nil {
		return err
	}
	l.Info("Read file", zap.String("path", path), zap.Int("rows", len(src.Data)))

	opts := cfg.Import.Options()
	if lenientImport {
		opts.Strict = false
	}
	incoming, err := importer.Normalize(src, sch, opts)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			printViolations(verr)
			return fmt.Errorf("%s has %d invalid rows (%d problems)", path, verr.Rows(), len(verr.Violations))
		}
		return err
	}

	// Step 2: Plan against the stored records
	if removalsFlag == "" {
		removalsFlag = cfg.Reconcile.Removals
	}
	policy, err := reconcile.ParseRemovalPolicy(removalsFlag)
	if err != nil {
		return err
	}
	if purgeImport {
		policy = reconcile.RemovalsReport
	}

	recordStore, err := openRecordStore(ctx, cfg.Database)
	if err != nil {
		return err
	}

	applyOpts := reconcile.ApplyOptions{DryRun: dryRunImport, DoPurge: purgeImport}
	// No caching: the CLI plans once and the store may change between runs
	plan, err := reconcile.ReconcileWithPlan(ctx, sch, incoming, reconcile.NewCache(0), recordStore,
		reconcile.Options{Removals: policy}, applyOpts)
	if err != nil {
		return fmt.Errorf("failed to plan import: %w", err)
	}

	printImportReport(l, plan)

	if !applyImport {
		l.Info("No actions requested. Use --apply to write new and modified records.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if dryRunImport {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required, the store is up to date.")
		return nil
	}

	if !confirmAction(plan.Summary.Deletes > 0) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	applyOpts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, baseName, recordStore, plan, applyOpts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// openRecordStore connects to the database and makes sure the record table exists.
func openRecordStore(ctx context.Context, cfg database.Config) (*store.Store, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	s := store.New(db)
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func printViolations(verr *validate.ValidationError) {
	fmt.Printf("\n--- %d problems in %s ---\n", len(verr.Violations), verr.BaseName)
	for _, v := range verr.Violations {
		fmt.Println("  " + v.String())
	}
	fmt.Println()
}

// printImportReport prints a formatted import report using logger.
func printImportReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Report.Summary

	l.Info("Import report",
		zap.String("base_name", plan.Report.BaseName),
		zap.Int("total", s.Total),
		zap.Int("new", s.New),
		zap.Int("duplicate", s.Duplicate),
		zap.Int("modified", s.Modified),
		zap.Int("removed", s.Removed),
	)

	if len(plan.Report.DuplicateExistingKeys) > 0 {
		l.Warn("Stored records share a primary key", zap.Strings("keys", plan.Report.DuplicateExistingKeys))
	}

	if len(plan.Report.MissingKeys) > 0 {
		l.Warn("Records without a primary key were skipped", zap.Ints("rows", plan.Report.MissingKeys))
	}

	// Show at most 5 modified records
	shown := 0
	for _, r := range plan.Report.Results {
		if r.Status != reconcile.StatusModified || shown == 5 {
			continue
		}
		fields := make([]zap.Field, 0, len(r.Changes)+1)
		fields = append(fields, zap.String("key", r.Key))
		for k, change := range r.Changes {
			fields = append(fields, zap.String(k, change))
		}
		l.Info("Modified record", fields...)
		shown++
	}
	if s.Modified > shown {
		l.Info("Additional modified records not shown", zap.Int("count", s.Modified-shown))
	}

	for _, r := range plan.Report.Removed {
		l.Info("Removed record", zap.String("key", r.Key))
	}

	if len(plan.Actions) > 0 {
		l.Info("Planned actions",
			zap.Int("inserts", plan.Summary.Inserts),
			zap.Int("updates", plan.Summary.Updates),
			zap.Int("deletes", plan.Summary.Deletes),
			zap.Int("total_actions", len(plan.Actions)),
		)
	}
}

// confirmAction prompts the user for confirmation or uses the --yes flag.
func confirmAction(destructive bool) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	if destructive {
		fmt.Print("\n⚠️  Type 'yes' to confirm writes and deletions: ")
	} else {
		fmt.Print("\nType 'yes' to confirm writes: ")
	}
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}

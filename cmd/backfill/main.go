package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rushikeshbylinelearning/HRMS-sub005/backfill"
	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

var (
	dateFlag    string
	executeFlag bool
	rollbackRun string
	batchSize   int
	reasonFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Retroactively correct historical attendance classifications",
	Long: `Re-runs the attendance resolvers over historical daily records.

By default the run is a dry run: it reports what would change without
writing. Pass --execute to apply corrections, or --rollback <run-id> to
revert a previous execute run. Admin-overridden, leave and already-correct
records are never touched.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "only reconcile records for this date (YYYY-MM-DD)")
	rootCmd.Flags().BoolVar(&executeFlag, "execute", false, "apply corrections instead of reporting them")
	rootCmd.Flags().StringVar(&rollbackRun, "rollback", "", "revert the records written by this run identifier")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", backfill.DefaultBatchSize, "records per transaction")
	rootCmd.Flags().StringVar(&reasonFlag, "reason", "", "reason recorded on corrected records")
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if executeFlag && rollbackRun != "" {
		return fmt.Errorf("--execute and --rollback are mutually exclusive")
	}
	if dateFlag != "" {
		if _, err := time.Parse("2006-01-02", dateFlag); err != nil {
			return fmt.Errorf("--date must be YYYY-MM-DD")
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := models.Connect()
	if err != nil {
		return err
	}

	opts := backfill.Options{
		Date:      dateFlag,
		BatchSize: batchSize,
		Reason:    reasonFlag,
	}
	switch {
	case rollbackRun != "":
		opts.Mode = backfill.ModeRollback
		opts.RunID = rollbackRun
	case executeFlag:
		opts.Mode = backfill.ModeExecute
		opts.RunID = uuid.NewString()
	default:
		opts.Mode = backfill.ModeDryRun
	}

	reconciler := backfill.New(db, engine.SystemClock{}, logger)
	report, err := reconciler.Run(opts)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package backfill

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

// Mode selects what a reconciliation run does with eligible records.
type Mode string

const (
	ModeDryRun   Mode = "dry-run"
	ModeExecute  Mode = "execute"
	ModeRollback Mode = "rollback"
)

// Version is stamped into backfill_version on every written record so later
// tooling can tell which rule revision produced a correction.
const Version = "v1"

const DefaultBatchSize = 100

// Skip reasons tallied per record. These are expected conditions, not errors.
const (
	SkipAdminOverride  = "admin_override"
	SkipLeave          = "leave"
	SkipAdminHalfDay   = "admin_half_day"
	SkipNoClockIn      = "no_clock_in"
	SkipNoPolicy       = "no_policy"
	SkipAlreadyCorrect = "already_correct"
	SkipNotTagged      = "not_tagged_by_run"
)

// Options configures one reconciliation run.
type Options struct {
	Mode      Mode
	Date      string // optional "YYYY-MM-DD" filter
	RunID     string // required for execute and rollback
	BatchSize int
	Reason    string
}

// Reconciler re-applies the attendance resolvers over historical records in
// bounded batches. It never touches admin-overridden, leave, or
// already-correct records.
type Reconciler struct {
	db    *gorm.DB
	clock engine.Clock
	log   *zap.Logger
}

func New(db *gorm.DB, clock engine.Clock, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{db: db, clock: clock, log: logger}
}

// Run executes one reconciliation pass and returns its report. Per-record
// problems are tallied in the report; the returned error is non-nil only for
// run-level failures (store unreachable, transaction aborted).
func (r *Reconciler) Run(opts Options) (*Report, error) {
	if opts.Mode == "" {
		opts.Mode = ModeDryRun
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Reason == "" {
		opts.Reason = "attendance reconciliation"
	}

	rep := newReport(opts)

	switch opts.Mode {
	case ModeRollback:
		if opts.RunID == "" {
			return rep, fmt.Errorf("rollback requires a run identifier")
		}
		return rep, r.rollback(opts, rep)
	case ModeExecute:
		if opts.RunID == "" {
			return rep, fmt.Errorf("execute requires a run identifier")
		}
	case ModeDryRun:
	default:
		return rep, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	r.log.Info("starting reconciliation",
		zap.String("mode", string(opts.Mode)),
		zap.String("run_id", opts.RunID),
		zap.String("date", opts.Date))

	lastID := int64(0)
	for {
		var records []models.DailyAttendanceRecord
		q := r.db.Where("id > ?", lastID).Order("id asc").Limit(opts.BatchSize)
		if opts.Date != "" {
			q = q.Where("date = ?", opts.Date)
		}
		if err := q.Find(&records).Error; err != nil {
			return rep, fmt.Errorf("scanning records after id %d: %w", lastID, err)
		}
		if len(records) == 0 {
			break
		}
		lastID = records[len(records)-1].Id

		if opts.Mode == ModeExecute {
			if err := r.executeBatch(records, opts, rep); err != nil {
				return rep, err
			}
		} else {
			r.dryRunBatch(records, rep)
		}
	}

	r.log.Info("reconciliation finished",
		zap.Int("scanned", rep.Scanned),
		zap.Int("eligible", rep.Eligible),
		zap.Int("updated", rep.Updated),
		zap.Int("errors", rep.Errors))
	return rep, nil
}

// evaluate applies the eligibility gate and, when the record may be touched,
// recomputes its classification. A non-empty skip reason means "leave it
// alone"; an error means this one record could not be evaluated.
func (r *Reconciler) evaluate(db *gorm.DB, rec models.DailyAttendanceRecord) (engine.Classification, string, error) {
	if rec.OverriddenByAdmin {
		return engine.Classification{}, SkipAdminOverride, nil
	}
	if rec.AttendanceStatus == engine.StatusLeave {
		return engine.Classification{}, SkipLeave, nil
	}
	if rec.IsHalfDay && rec.HalfDaySource == engine.SourceAdmin {
		return engine.Classification{}, SkipAdminHalfDay, nil
	}
	if rec.ClockInTime == nil {
		return engine.Classification{}, SkipNoClockIn, nil
	}

	var emp models.Employee
	if err := db.First(&emp, rec.EmployeeId).Error; err != nil {
		return engine.Classification{}, "", fmt.Errorf("loading employee %d: %w", rec.EmployeeId, err)
	}

	ev, err := models.EvaluateDay(db, emp, rec.Date, r.clock.Now())
	if err != nil {
		return engine.Classification{}, "", fmt.Errorf("evaluating %s: %w", rec.Date, err)
	}
	if !ev.PolicyOK || !ev.Classifiable {
		return engine.Classification{}, SkipNoPolicy, nil
	}
	if rec.MatchesClassification(ev.Classification) {
		return engine.Classification{}, SkipAlreadyCorrect, nil
	}
	return ev.Classification, "", nil
}

func (r *Reconciler) dryRunBatch(records []models.DailyAttendanceRecord, rep *Report) {
	for _, rec := range records {
		rep.Scanned++
		cls, skipReason, err := r.evaluate(r.db, rec)
		if err != nil {
			rep.Errors++
			r.log.Warn("record evaluation failed", zap.Int64("record_id", rec.Id), zap.Error(err))
			continue
		}
		if skipReason != "" {
			rep.skip(skipReason)
			continue
		}
		rep.Eligible++
		r.log.Info("would update record",
			zap.Int64("record_id", rec.Id),
			zap.String("date", rec.Date),
			zap.String("from", string(rec.AttendanceStatus)),
			zap.String("to", string(cls.Status)))
	}
}

func (r *Reconciler) executeBatch(records []models.DailyAttendanceRecord, opts Options, rep *Report) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			rep.Scanned++
			cls, skipReason, err := r.evaluate(tx, rec)
			if err != nil {
				rep.Errors++
				r.log.Warn("record evaluation failed", zap.Int64("record_id", rec.Id), zap.Error(err))
				continue
			}
			if skipReason != "" {
				rep.skip(skipReason)
				continue
			}
			rep.Eligible++

			audit := models.SnapshotOf(rec, opts.RunID)
			if err := tx.Create(&audit).Error; err != nil {
				rep.Errors++
				r.log.Warn("audit write failed", zap.Int64("record_id", rec.Id), zap.Error(err))
				continue
			}

			rec.ApplyClassification(cls)
			rec.HalfDaySource = engine.SourceAuto
			now := r.clock.Now()
			rec.BackfilledAt = &now
			rec.BackfilledBy = opts.RunID
			rec.BackfillVersion = Version
			rec.BackfillReason = opts.Reason
			if err := tx.Save(&rec).Error; err != nil {
				rep.Errors++
				r.log.Warn("record write failed", zap.Int64("record_id", rec.Id), zap.Error(err))
				continue
			}
			rep.Updated++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch transaction: %w", err)
	}
	return nil
}

// rollback reverts every record tagged with the run identifier from its
// audit snapshot and removes the snapshots. Records not carrying the
// identifier are never touched, so re-running a rollback is a no-op.
func (r *Reconciler) rollback(opts Options, rep *Report) error {
	lastID := int64(0)
	for {
		var audits []models.BackfillAudit
		if err := r.db.Where("run_id = ? AND id > ?", opts.RunID, lastID).
			Order("id asc").Limit(opts.BatchSize).Find(&audits).Error; err != nil {
			return fmt.Errorf("scanning audits for run %s: %w", opts.RunID, err)
		}
		if len(audits) == 0 {
			return nil
		}
		lastID = audits[len(audits)-1].Id

		err := r.db.Transaction(func(tx *gorm.DB) error {
			for _, audit := range audits {
				rep.Scanned++

				var rec models.DailyAttendanceRecord
				if err := tx.First(&rec, audit.RecordId).Error; err != nil {
					rep.Errors++
					r.log.Warn("record missing during rollback",
						zap.Int64("record_id", audit.RecordId), zap.Error(err))
					continue
				}
				if rec.BackfilledBy != opts.RunID {
					// a later run rewrote this record; leave its state alone
					rep.skip(SkipNotTagged)
					if err := tx.Delete(&models.BackfillAudit{}, audit.Id).Error; err != nil {
						rep.Errors++
					}
					continue
				}

				audit.Restore(&rec)
				if err := tx.Save(&rec).Error; err != nil {
					rep.Errors++
					r.log.Warn("record restore failed", zap.Int64("record_id", rec.Id), zap.Error(err))
					continue
				}
				if err := tx.Delete(&models.BackfillAudit{}, audit.Id).Error; err != nil {
					rep.Errors++
					continue
				}
				rep.Reverted++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("rollback transaction: %w", err)
		}
	}
}

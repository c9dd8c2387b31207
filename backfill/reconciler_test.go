package backfill

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

const testDate = "2025-03-10" // a Monday

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func seedShift(t *testing.T, db *gorm.DB) models.ShiftDefinition {
	t.Helper()
	shift := models.ShiftDefinition{
		Name:      "general",
		ShiftType: engine.ShiftFixed,
		StartTime: "09:00",
		EndTime:   "18:00",
	}
	require.NoError(t, db.Create(&shift).Error)
	return shift
}

func seedEmployee(t *testing.T, db *gorm.DB, shiftID int64, username string) models.Employee {
	t.Helper()
	emp := models.Employee{
		Name:     username,
		Username: username,
		ShiftId:  shiftID,
		IsActive: true,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func dayTime(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.Local)
}

// seedWorkedDay stores a completed 09:45-18:30 day whose record carries a
// deliberately wrong ON_TIME classification; the resolvers would call it LATE.
func seedWorkedDay(t *testing.T, db *gorm.DB, emp models.Employee) models.DailyAttendanceRecord {
	t.Helper()
	start := dayTime(9, 45)
	end := dayTime(18, 30)
	require.NoError(t, db.Create(&models.WorkSession{
		EmployeeId: emp.Id, Date: testDate, StartTime: start, EndTime: &end,
	}).Error)

	rec := models.DailyAttendanceRecord{
		EmployeeId:       emp.Id,
		Date:             testDate,
		ClockInTime:      &start,
		AttendanceStatus: engine.StatusOnTime,
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func newTestReconciler(db *gorm.DB) *Reconciler {
	evalAt := time.Date(2025, 3, 20, 12, 0, 0, 0, time.Local)
	return New(db, engine.FixedClock{At: evalAt}, nil)
}

func reload(t *testing.T, db *gorm.DB, id int64) models.DailyAttendanceRecord {
	t.Helper()
	var rec models.DailyAttendanceRecord
	require.NoError(t, db.First(&rec, id).Error)
	return rec
}

func TestDryRunWritesNothing(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	rec := seedWorkedDay(t, db, emp)

	rep, err := newTestReconciler(db).Run(Options{})
	require.NoError(t, err)

	assert.Equal(t, ModeDryRun, rep.Mode)
	assert.Equal(t, 1, rep.Scanned)
	assert.Equal(t, 1, rep.Eligible)
	assert.Equal(t, 0, rep.Updated)

	after := reload(t, db, rec.Id)
	assert.Equal(t, engine.StatusOnTime, after.AttendanceStatus)
	assert.Empty(t, after.BackfilledBy)
}

func TestExecuteUpdatesAndIsIdempotent(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	rec := seedWorkedDay(t, db, emp)

	r := newTestReconciler(db)
	rep, err := r.Run(Options{Mode: ModeExecute, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 0, rep.Errors)

	after := reload(t, db, rec.Id)
	assert.Equal(t, engine.StatusLate, after.AttendanceStatus)
	assert.True(t, after.IsLate)
	assert.Equal(t, 45, after.LateMinutes)
	assert.Equal(t, engine.SourceAuto, after.HalfDaySource)
	assert.Equal(t, "run-1", after.BackfilledBy)
	assert.Equal(t, Version, after.BackfillVersion)
	assert.NotNil(t, after.BackfilledAt)
	assert.NotEmpty(t, after.BackfillReason)

	// second pass finds nothing left to correct
	rep2, err := r.Run(Options{Mode: ModeExecute, RunID: "run-2"})
	require.NoError(t, err)
	assert.Equal(t, 0, rep2.Updated)
	assert.Equal(t, 1, rep2.Skipped[SkipAlreadyCorrect])

	unchanged := reload(t, db, rec.Id)
	assert.Equal(t, "run-1", unchanged.BackfilledBy)
}

func TestProtectedRecordsUntouched(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)

	overridden := seedWorkedDay(t, db, seedEmployee(t, db, shift.Id, "asha"))
	overridden.OverriddenByAdmin = true
	require.NoError(t, db.Save(&overridden).Error)

	onLeave := seedWorkedDay(t, db, seedEmployee(t, db, shift.Id, "ravi"))
	onLeave.AttendanceStatus = engine.StatusLeave
	require.NoError(t, db.Save(&onLeave).Error)

	adminHalf := seedWorkedDay(t, db, seedEmployee(t, db, shift.Id, "meera"))
	adminHalf.IsHalfDay = true
	adminHalf.HalfDaySource = engine.SourceAdmin
	adminHalf.HalfDayReasonCode = engine.ReasonAdminSet
	require.NoError(t, db.Save(&adminHalf).Error)

	rep, err := newTestReconciler(db).Run(Options{Mode: ModeExecute, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Updated)
	assert.Equal(t, 1, rep.Skipped[SkipAdminOverride])
	assert.Equal(t, 1, rep.Skipped[SkipLeave])
	assert.Equal(t, 1, rep.Skipped[SkipAdminHalfDay])

	for _, before := range []models.DailyAttendanceRecord{overridden, onLeave, adminHalf} {
		after := reload(t, db, before.Id)
		assert.Equal(t, before.AttendanceStatus, after.AttendanceStatus)
		assert.Equal(t, before.IsLate, after.IsLate)
		assert.Equal(t, before.IsHalfDay, after.IsHalfDay)
		assert.Equal(t, before.HalfDayReasonCode, after.HalfDayReasonCode)
		assert.Empty(t, after.BackfilledBy)
	}
}

func TestRollbackRestoresOnlyTaggedRecords(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	rec := seedWorkedDay(t, db, emp)

	other := seedWorkedDay(t, db, seedEmployee(t, db, shift.Id, "ravi"))
	other.OverriddenByAdmin = true
	require.NoError(t, db.Save(&other).Error)

	r := newTestReconciler(db)
	_, err := r.Run(Options{Mode: ModeExecute, RunID: "run-1"})
	require.NoError(t, err)

	rep, err := r.Run(Options{Mode: ModeRollback, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Reverted)

	restored := reload(t, db, rec.Id)
	assert.Equal(t, engine.StatusOnTime, restored.AttendanceStatus)
	assert.False(t, restored.IsLate)
	assert.Equal(t, 0, restored.LateMinutes)
	assert.Nil(t, restored.BackfilledAt)
	assert.Empty(t, restored.BackfilledBy)
	assert.Empty(t, restored.BackfillVersion)
	assert.Empty(t, restored.BackfillReason)

	untouched := reload(t, db, other.Id)
	assert.Equal(t, other.AttendanceStatus, untouched.AttendanceStatus)

	var auditCount int64
	require.NoError(t, db.Model(&models.BackfillAudit{}).Where("run_id = ?", "run-1").Count(&auditCount).Error)
	assert.Zero(t, auditCount)

	// rollback is idempotent: nothing left to revert
	rep2, err := r.Run(Options{Mode: ModeRollback, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, rep2.Reverted)
}

func TestRollbackSkipsRecordsRewrittenByLaterRun(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	rec := seedWorkedDay(t, db, emp)

	r := newTestReconciler(db)
	_, err := r.Run(Options{Mode: ModeExecute, RunID: "run-1"})
	require.NoError(t, err)

	// a later manual rewrite re-tags the record
	current := reload(t, db, rec.Id)
	current.BackfilledBy = "run-2"
	require.NoError(t, db.Save(&current).Error)

	rep, err := r.Run(Options{Mode: ModeRollback, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Reverted)
	assert.Equal(t, 1, rep.Skipped[SkipNotTagged])

	after := reload(t, db, rec.Id)
	assert.Equal(t, "run-2", after.BackfilledBy)
}

func TestPerRecordFailureDoesNotAbortRun(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	good := seedWorkedDay(t, db, emp)

	// record pointing at an employee that no longer exists
	clockIn := dayTime(9, 0)
	broken := models.DailyAttendanceRecord{
		EmployeeId:       9999,
		Date:             testDate,
		ClockInTime:      &clockIn,
		AttendanceStatus: engine.StatusOnTime,
	}
	require.NoError(t, db.Create(&broken).Error)

	rep, err := newTestReconciler(db).Run(Options{Mode: ModeExecute, RunID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Scanned)
	assert.Equal(t, 1, rep.Errors)
	assert.Equal(t, 1, rep.Updated)

	after := reload(t, db, good.Id)
	assert.Equal(t, engine.StatusLate, after.AttendanceStatus)
}

func TestDateFilterLimitsScan(t *testing.T) {
	db := testDB(t)
	shift := seedShift(t, db)
	emp := seedEmployee(t, db, shift.Id, "asha")
	seedWorkedDay(t, db, emp)

	rep, err := newTestReconciler(db).Run(Options{Date: "2025-03-11"})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Scanned)
}

func TestRunRequiresRunID(t *testing.T) {
	db := testDB(t)
	r := newTestReconciler(db)

	_, err := r.Run(Options{Mode: ModeExecute})
	assert.Error(t, err)

	_, err = r.Run(Options{Mode: ModeRollback})
	assert.Error(t, err)
}

package attendancecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/helper"
	"github.com/rushikeshbylinelearning/HRMS-sub005/middlewares"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

type Handler struct {
	DB    *gorm.DB
	Clock engine.Clock
}

func New(db *gorm.DB, clock engine.Clock) *Handler {
	return &Handler{DB: db, Clock: clock}
}

// refresh re-runs the resolvers over the employee's day and persists the
// outcome onto the daily record. Admin-overridden records and unresolvable
// policies leave the stored classification untouched.
func (h *Handler) refresh(emp models.Employee, date string) (models.DayEvaluation, error) {
	ev, err := models.EvaluateDay(h.DB, emp, date, h.Clock.Now())
	if err != nil {
		return ev, err
	}
	if ev.Record == nil || !ev.Classifiable {
		return ev, nil
	}

	ev.Record.ApplyClassification(ev.Classification)
	ev.Record.ClockInTime = ev.ClockIn
	// closed durations only; an open break's projection is never persisted
	ev.Record.PaidBreakMinutes = ev.Summary.PaidMinutes
	ev.Record.UnpaidBreakMinutes = ev.Summary.UnpaidMinutes
	ev.Record.ExtraBreakMinutes = ev.Summary.ExtraMinutes
	if err := h.DB.Save(ev.Record).Error; err != nil {
		return ev, err
	}
	return ev, nil
}

func (h *Handler) ClockIn(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	now := h.Clock.Now()
	date := now.Format("2006-01-02")

	var openCount int64
	if err := h.DB.Model(&models.WorkSession{}).
		Where("employee_id = ? AND end_time IS NULL", emp.Id).
		Count(&openCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if openCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "a session is already open"})
		return
	}

	session := models.WorkSession{EmployeeId: emp.Id, Date: date, StartTime: now}
	if err := h.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	// first clock-in of the calendar day creates the daily record
	var record models.DailyAttendanceRecord
	err := h.DB.Where("employee_id = ? AND date = ?", emp.Id, date).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.DailyAttendanceRecord{EmployeeId: emp.Id, Date: date, ClockInTime: &now}
		err = h.DB.Create(&record).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record attendance"})
		return
	}

	ev, err := h.refresh(emp, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "clocked in",
		"session":     session,
		"record":      ev.Record,
		"logout_time": ev.LogoutTime,
	})
}

func (h *Handler) ClockOut(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	var session models.WorkSession
	if err := h.DB.Where("employee_id = ? AND end_time IS NULL", emp.Id).
		First(&session).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no open session to close"})
		return
	}

	var openBreaks int64
	if err := h.DB.Model(&models.BreakInterval{}).
		Where("employee_id = ? AND end_time IS NULL", emp.Id).
		Count(&openBreaks).Error; err == nil && openBreaks > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "end the open break before clocking out"})
		return
	}

	now := h.Clock.Now()
	session.EndTime = &now
	if err := h.DB.Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close session"})
		return
	}

	ev, err := h.refresh(emp, session.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "clocked out",
		"session":        session,
		"record":         ev.Record,
		"worked_minutes": ev.WorkedMinutes,
	})
}

type startBreakInput struct {
	Kind engine.BreakKind `json:"kind" binding:"required"`
}

func (h *Handler) StartBreak(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	var input startBreakInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch input.Kind {
	case engine.BreakPaid, engine.BreakUnpaid, engine.BreakExtra:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be PAID, UNPAID or EXTRA"})
		return
	}

	var session models.WorkSession
	if err := h.DB.Where("employee_id = ? AND end_time IS NULL", emp.Id).
		First(&session).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no open session; clock in first"})
		return
	}

	var openBreaks int64
	if err := h.DB.Model(&models.BreakInterval{}).
		Where("employee_id = ? AND end_time IS NULL", emp.Id).
		Count(&openBreaks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if openBreaks > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "a break is already open"})
		return
	}

	brk := models.BreakInterval{
		EmployeeId: emp.Id,
		SessionId:  session.Id,
		Date:       session.Date,
		Kind:       input.Kind,
		StartTime:  h.Clock.Now(),
	}
	if err := h.DB.Create(&brk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start break"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "break started", "break": brk})
}

func (h *Handler) EndBreak(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	var brk models.BreakInterval
	if err := h.DB.Where("employee_id = ? AND end_time IS NULL", emp.Id).
		First(&brk).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no open break to end"})
		return
	}

	now := h.Clock.Now()
	brk.EndTime = &now
	if err := h.DB.Save(&brk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end break"})
		return
	}

	ev, err := h.refresh(emp, brk.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "break ended",
		"break":       brk,
		"record":      ev.Record,
		"logout_time": ev.LogoutTime,
	})
}

// Today is the live evaluation of the current day: required logout time plus
// the classification tuple, including the open break's projected minutes.
func (h *Handler) Today(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	date := h.Clock.Now().Format("2006-01-02")
	ev, err := h.refresh(emp, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"date":           date,
		"record":         ev.Record,
		"logout_time":    ev.LogoutTime,
		"worked_minutes": ev.WorkedMinutes,
		"day_complete":   ev.DayComplete,
	}
	if ev.Summary.HasActive {
		resp["active_break"] = gin.H{
			"kind":              ev.Summary.ActiveKind,
			"projected_minutes": ev.Summary.ActiveMinutes,
		}
	}
	if !ev.PolicyOK {
		resp["warning"] = "shift policy could not be resolved; day is unclassified"
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) History(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	var records []models.DailyAttendanceRecord
	if err := h.DB.Where("employee_id = ?", emp.Id).
		Order("date desc").Limit(30).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// PredictLogout estimates today's likely logout from the employee's recent
// completed days, as opposed to the rule-based required logout.
func (h *Handler) PredictLogout(c *gin.Context) {
	emp, ok := middlewares.CurrentEmployee(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	var session models.WorkSession
	if err := h.DB.Where("employee_id = ? AND end_time IS NULL", emp.Id).
		First(&session).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no open session; clock in first"})
		return
	}

	history, err := helper.LogoutTrainingData(h.DB, emp.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	predicted, err := helper.PredictLogoutTime(history, session.StartTime.Format("15:04"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not enough history to predict"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clock_in":          session.StartTime.Format("15:04"),
		"predicted_logout":  predicted,
		"history_days_used": len(history),
	})
}

type overrideInput struct {
	AttendanceStatus  engine.AttendanceStatus `json:"attendance_status" binding:"required"`
	IsHalfDay         bool                    `json:"is_half_day"`
	HalfDayReasonText string                  `json:"half_day_reason_text"`
}

// Override lets an admin pin a record's classification. Overridden records
// are never touched by the resolvers or the backfill reconciler again.
func (h *Handler) Override(c *gin.Context) {
	var input overrideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record models.DailyAttendanceRecord
	if err := h.DB.First(&record, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	record.AttendanceStatus = input.AttendanceStatus
	record.OverriddenByAdmin = true
	record.IsHalfDay = input.IsHalfDay
	if input.IsHalfDay {
		record.HalfDayReasonCode = engine.ReasonAdminSet
		record.HalfDayReasonText = input.HalfDayReasonText
		record.HalfDaySource = engine.SourceAdmin
	}
	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "record overridden", "record": record})
}

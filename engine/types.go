package engine

// BreakKind categorises a break interval against the shift's paid-break
// allowance.
type BreakKind string

const (
	BreakPaid   BreakKind = "PAID"
	BreakUnpaid BreakKind = "UNPAID"
	BreakExtra  BreakKind = "EXTRA"
)

// ShiftType distinguishes shifts anchored to wall-clock start/end times from
// duration-only shifts.
type ShiftType string

const (
	ShiftFixed    ShiftType = "FIXED"
	ShiftFlexible ShiftType = "FLEXIBLE"
)

// AttendanceStatus is the final per-day classification.
type AttendanceStatus string

const (
	StatusOnTime     AttendanceStatus = "ON_TIME"
	StatusLate       AttendanceStatus = "LATE"
	StatusHalfDay    AttendanceStatus = "HALF_DAY"
	StatusAbsent     AttendanceStatus = "ABSENT"
	StatusLeave      AttendanceStatus = "LEAVE"
	StatusNonWorking AttendanceStatus = "NON_WORKING"
)

// HalfDayReasonCode records which rule produced a half-day classification.
type HalfDayReasonCode string

const (
	ReasonNone              HalfDayReasonCode = ""
	ReasonLateLogin         HalfDayReasonCode = "LATE_LOGIN"
	ReasonInsufficientHours HalfDayReasonCode = "INSUFFICIENT_WORKING_HOURS"
	ReasonAdminSet          HalfDayReasonCode = "ADMIN_SET"
)

// HalfDaySource records whether a half-day flag came from the automated
// resolvers or was set by an admin. Admin-set flags are never overwritten.
type HalfDaySource string

const (
	SourceAuto  HalfDaySource = "AUTO"
	SourceAdmin HalfDaySource = "ADMIN"
)

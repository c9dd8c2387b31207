package engine

import "time"

// CalculateLogoutTime combines the day's clock-in instant, break totals and
// shift policy into the required logout timestamp. Returns nil when no
// clock-in exists: the day has not started and no logout can be computed.
//
// Standard shifts add the base shift duration plus every extending break
// minute to the clock-in instant. Narrow-window shifts (e.g. 10:00-19:00)
// instead anchor on the nominal window: arriving early buys back break time
// up to the early margin, and the result is floored at the nominal end.
func CalculateLogoutTime(clockIn *time.Time, breaks BreakSummary, policy ShiftPolicy) *time.Time {
	if clockIn == nil {
		return nil
	}

	extension := breaks.ExtensionMinutes(policy)

	if policy.IsFixed && policy.IsNarrowWindow {
		return narrowWindowLogout(*clockIn, extension, policy)
	}

	out := clockIn.Add(time.Duration(policy.BaseShiftMinutes+extension) * time.Minute)
	return &out
}

func narrowWindowLogout(clockIn time.Time, extension int, policy ShiftPolicy) *time.Time {
	nominalStart := minuteOfDay(clockIn, policy.StartMinute)
	nominalEnd := minuteOfDay(clockIn, policy.EndMinute)

	if clockIn.Before(nominalStart) {
		earlyLoginMinutes := int(nominalStart.Sub(clockIn) / time.Minute)
		adjustment := extension - earlyLoginMinutes
		if adjustment < 0 {
			adjustment = 0
		}
		out := nominalEnd.Add(time.Duration(adjustment) * time.Minute)
		if out.Before(nominalEnd) {
			out = nominalEnd
		}
		return &out
	}

	// at or after nominal start: standard path anchored on the nominal start
	out := nominalStart.Add(time.Duration(policy.BaseShiftMinutes+extension) * time.Minute)
	if out.Before(nominalEnd) {
		out = nominalEnd
	}
	return &out
}

package schedule

// OpenHours resolves the ordered list of open hours for one weekday out of an
// arena's weekly entries. The second return is false when the arena has no
// entry for that day.
//
// Hours run over the half-open interval [opening, closing). When both lunch
// bounds are set, the two boundary hours themselves are excluded — an hour h
// is dropped when h == lunch_closing or h == lunch_opening. This is an
// exact-equality exclusion, not a ranged one, and a single configured bound
// disables the exclusion entirely.
func OpenHours(entries []OpeningHours, day Weekday) ([]int, bool) {
	entry, ok := EntryFor(entries, day)
	if !ok {
		return nil, false
	}

	hours := make([]int, 0, entry.Closing-entry.Opening)
	hasLunch := entry.LunchOpening != nil && entry.LunchClosing != nil
	for h := entry.Opening; h < entry.Closing; h++ {
		if hasLunch && (h == *entry.LunchClosing || h == *entry.LunchOpening) {
			continue
		}
		hours = append(hours, h)
	}
	return hours, true
}

// EntryFor finds the entry for a weekday. At most one entry per weekday is
// enforced at write time; the first match wins here.
func EntryFor(entries []OpeningHours, day Weekday) (*OpeningHours, bool) {
	for i := range entries {
		if entries[i].WeekDay.Number() == day.Number() {
			return &entries[i], true
		}
	}
	return nil, false
}

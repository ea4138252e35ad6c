package model

import "github.com/samber/lo"

// Overlaps checks whether two slots of different groups share semester, weekday and (optionally)
// location while their [start, end) intervals intersect
func Overlaps(a, b Slot, matchLocation bool) bool {
	// A group's paired slots (lab plus alternate lecture hall) never collide, nor does a slot with itself
	if a.GroupID == b.GroupID || a.ID == b.ID {
		return false
	}
	if a.Semester != b.Semester || a.WeekDay != b.WeekDay {
		return false
	}
	if matchLocation && a.Location != b.Location {
		return false
	}
	return !(a.StartTime >= b.EndTime || b.StartTime >= a.EndTime)
}

// FirstConflict returns the first slot in slots overlapping with slot. Overlaps among slots themselves are not inspected
func FirstConflict(slot Slot, slots []Slot, matchLocation bool) (Slot, bool) {
	return lo.Find(slots, func(other Slot) bool {
		return Overlaps(slot, other, matchLocation)
	})
}

// GroupConflicts returns the groups in others holding at least one slot that overlaps in time with a slot of group,
// regardless of location. slots must contain every slot referenced by group and others
func GroupConflicts(group Group, others []Group, slots []Slot) []Group {
	slotByID := lo.KeyBy(slots, func(slot Slot) uint64 { return slot.ID })
	resolve := func(ids []uint64) []Slot {
		return lo.FilterMap(ids, func(id uint64, _ int) (Slot, bool) {
			slot, ok := slotByID[id]
			return slot, ok
		})
	}

	conflicting := make([]Group, 0)
	seen := make(map[uint64]bool)
	for _, own := range resolve(group.Slots) {
		for _, other := range others {
			if seen[other.ID] {
				continue
			}
			if _, ok := FirstConflict(own, resolve(other.Slots), false); ok {
				seen[other.ID] = true
				conflicting = append(conflicting, other)
			}
		}
	}
	return conflicting
}

package model

import "github.com/samber/lo"

type placementKey struct {
	semester Semester
	day      WeekDay
	location string
}

// Validate checks that state satisfies every cross-reference invariant and returns the first violation found.
// Overlapping placements are not violations: SetSlot can create them on purpose. Conflicts and TeacherConflicts
// report them
func Validate(state State) error {
	//** Ids and field domains
	kinds := make(map[uint64]Kind)
	register := func(id uint64, kind Kind) error {
		if id == 0 {
			return invalidf("%v without id", kind)
		}
		if _, ok := kinds[id]; ok {
			return DuplicateIDError{ID: id}
		}
		kinds[id] = kind
		return nil
	}
	for _, user := range state.Users {
		if err := register(user.ID, UserKind); err != nil {
			return err
		}
		if err := validateUser(user); err != nil {
			return err
		}
	}
	for _, subject := range state.Subjects {
		if err := register(subject.ID, SubjectKind); err != nil {
			return err
		}
		if !subject.Semester.Valid() {
			return invalidf("subject %d has unknown semester %q", subject.ID, subject.Semester)
		}
	}
	for _, group := range state.Groups {
		if err := register(group.ID, GroupKind); err != nil {
			return err
		}
	}
	for _, slot := range state.Slots {
		if err := register(slot.ID, SlotKind); err != nil {
			return err
		}
		if !slot.WeekDay.Valid() || !slot.Semester.Valid() || slot.EndTime <= slot.StartTime {
			return invalidf("slot %d has a malformed placement", slot.ID)
		}
	}

	users := lo.KeyBy(state.Users, func(user User) uint64 { return user.ID })
	subjects := lo.KeyBy(state.Subjects, func(subject Subject) uint64 { return subject.ID })
	groups := lo.KeyBy(state.Groups, func(group Group) uint64 { return group.ID })
	slots := lo.KeyBy(state.Slots, func(slot Slot) uint64 { return slot.ID })

	//** Back references
	for _, user := range state.Users {
		if user.Role == Admin && len(user.Groups) > 0 {
			return invalidf("admin %d teaches groups %v", user.ID, user.Groups)
		}
		for _, id := range user.Groups {
			group, ok := groups[id]
			if !ok {
				return NotFoundError{Kind: GroupKind, ID: id}
			}
			if group.TeacherID != user.ID {
				return invalidf("user %d lists group %d taught by %d", user.ID, id, group.TeacherID)
			}
		}
	}
	for _, subject := range state.Subjects {
		for _, id := range subject.Groups {
			group, ok := groups[id]
			if !ok {
				return NotFoundError{Kind: GroupKind, ID: id}
			}
			if group.SubjectID != subject.ID {
				return invalidf("subject %d lists group %d of subject %d", subject.ID, id, group.SubjectID)
			}
		}
	}
	for _, group := range state.Groups {
		for _, id := range group.Slots {
			slot, ok := slots[id]
			if !ok {
				return NotFoundError{Kind: SlotKind, ID: id}
			}
			if slot.GroupID != group.ID {
				return invalidf("group %d lists slot %d of group %d", group.ID, id, slot.GroupID)
			}
		}
		if group.TeacherID != 0 {
			teacher, ok := users[group.TeacherID]
			if !ok {
				return NotFoundError{Kind: UserKind, ID: group.TeacherID}
			}
			if !lo.Contains(teacher.Groups, group.ID) {
				return invalidf("group %d is not listed by its teacher %d", group.ID, teacher.ID)
			}
		}
		if group.SubjectID != 0 {
			subject, ok := subjects[group.SubjectID]
			if !ok {
				return NotFoundError{Kind: SubjectKind, ID: group.SubjectID}
			}
			if !lo.Contains(subject.Groups, group.ID) {
				return invalidf("group %d is not listed by its subject %d", group.ID, subject.ID)
			}
		}
	}
	for _, slot := range state.Slots {
		group, ok := groups[slot.GroupID]
		if !ok {
			return NotFoundError{Kind: GroupKind, ID: slot.GroupID}
		}
		if !lo.Contains(group.Slots, slot.ID) {
			return invalidf("slot %d is not listed by its group %d", slot.ID, group.ID)
		}
	}

	return nil
}

// Conflicts lists every pair of overlapping slots in state (same place and time, different groups)
func Conflicts(state State) [][2]uint64 {
	pairs := make([][2]uint64, 0)
	occupancy := make(map[placementKey][]Slot)
	for _, slot := range state.Slots {
		key := placementKey{slot.Semester, slot.WeekDay, slot.Location}
		for _, other := range occupancy[key] {
			if Overlaps(slot, other, true) {
				pairs = append(pairs, [2]uint64{other.ID, slot.ID})
			}
		}
		occupancy[key] = append(occupancy[key], slot)
	}
	return pairs
}

// TeacherConflicts lists every pair of groups held by the same teacher whose slots overlap in time, in any room
func TeacherConflicts(state State) [][2]uint64 {
	groups := lo.KeyBy(state.Groups, func(group Group) uint64 { return group.ID })
	pairs := make([][2]uint64, 0)
	for _, user := range state.Users {
		held := lo.FilterMap(user.Groups, func(id uint64, _ int) (Group, bool) {
			group, ok := groups[id]
			return group, ok
		})
		for i, group := range held {
			for _, other := range GroupConflicts(group, held[i+1:], state.Slots) {
				pairs = append(pairs, [2]uint64{group.ID, other.ID})
			}
		}
	}
	return pairs
}

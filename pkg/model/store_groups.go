package model

import (
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type groupPlan struct {
	joinedSlots  []uint64
	droppedSlots []uint64
}

// AddGroup stores a copy of group under a fresh id and links it into its subject. Listed slots and the teacher are
// then applied exactly as SetGroup would
func (store *Store) AddGroup(group Group) (Group, error) {
	group = group.Clone()
	group.Slots = lo.Uniq(group.Slots)
	if !store.subjects.has(group.SubjectID) {
		return Group{}, NotFoundError{Kind: SubjectKind, ID: group.SubjectID}
	}
	if err := store.validateGroup(group); err != nil {
		return Group{}, err
	}
	group.ID = store.nextID
	plan, err := store.planGroup(group, Group{ID: group.ID})
	if err != nil {
		return Group{}, err
	}

	group.ID = store.allocate()
	if err := store.insertOrUpdate(group.ID, Group{ID: group.ID, SubjectID: group.SubjectID}, false); err != nil {
		return Group{}, err
	}
	store.applyGroup(group, Group{ID: group.ID}, plan)

	store.recorder.Mutation("add", GroupKind)
	store.logger.Debug("group added", zap.Uint64("id", group.ID), zap.Uint64("subjectId", group.SubjectID))
	return store.Group(group.ID)
}

// SetGroup replaces every field of the group with the same id. Slots no longer listed are deleted, newly listed
// slots move into this group, and teacher or subject changes move the group between their lists
func (store *Store) SetGroup(group Group) (Group, error) {
	old, ok := store.groups.get(group.ID)
	if !ok {
		return Group{}, NotFoundError{Kind: GroupKind, ID: group.ID}
	}
	group = group.Clone()
	group.Slots = lo.Uniq(group.Slots)
	if err := store.validateGroup(group); err != nil {
		return Group{}, err
	}
	plan, err := store.planGroup(group, old)
	if err != nil {
		return Group{}, err
	}

	store.applyGroup(group, old, plan)
	if len(plan.droppedSlots) > 0 {
		store.reindex()
	}

	store.recorder.Mutation("set", GroupKind)
	store.logger.Debug("group updated",
		zap.Uint64("id", group.ID),
		zap.Uint64s("joinedSlots", plan.joinedSlots),
		zap.Uint64s("droppedSlots", plan.droppedSlots),
		zap.Uint64("teacherId", group.TeacherID),
	)
	return store.Group(group.ID)
}

// RmGroup removes the group and its slots and detaches it from its subject and teacher. The subject survives even
// when left without groups
func (store *Store) RmGroup(id uint64) error {
	if !store.groups.has(id) {
		return NotFoundError{Kind: GroupKind, ID: id}
	}
	store.dropGroup(id)
	store.reindex()

	store.recorder.Mutation("rm", GroupKind)
	store.logger.Debug("group removed", zap.Uint64("id", id))
	return nil
}

// planGroup validates a group update before anything is written. A new teacher must be able to hold the group
// without time conflicts, taking into account the slots the update moves or deletes
func (store *Store) planGroup(group, old Group) (groupPlan, error) {
	plan := groupPlan{}
	plan.droppedSlots, plan.joinedSlots = lo.Difference(old.Slots, group.Slots)

	if group.TeacherID == 0 {
		return plan, nil
	}

	// Project the slot table as it would look after the update
	projected := make([]Slot, 0, store.slots.len())
	for _, slot := range store.slots.all() {
		if slices.Contains(plan.droppedSlots, slot.ID) {
			continue
		}
		if slices.Contains(plan.joinedSlots, slot.ID) {
			slot.GroupID = group.ID
		}
		projected = append(projected, slot)
	}

	teacher, _ := store.users.get(group.TeacherID)
	others := make([]Group, 0, len(teacher.Groups))
	for _, id := range teacher.Groups {
		if id == group.ID {
			continue
		}
		other, ok := store.groups.get(id)
		if !ok {
			continue
		}
		other.Slots = lo.Without(other.Slots, plan.joinedSlots...)
		others = append(others, other)
	}

	if conflicting := GroupConflicts(group, others, projected); len(conflicting) > 0 {
		store.recorder.Conflict(GroupKind)
		return groupPlan{}, ConflictError{
			Kind: GroupKind,
			ID:   group.ID,
			With: lo.Map(conflicting, func(other Group, _ int) uint64 { return other.ID }),
		}
	}
	return plan, nil
}

func (store *Store) applyGroup(group, old Group, plan groupPlan) {
	for _, id := range plan.droppedSlots {
		store.slots.remove(id)
	}
	for _, id := range plan.joinedSlots {
		slot, _ := store.slots.get(id)
		if slot.GroupID != group.ID {
			store.unlinkSlotFromGroup(slot.GroupID, id)
		}
		slot.GroupID = group.ID
		store.slots.put(id, slot)
		store.touch(id)
	}

	if group.TeacherID != old.TeacherID && old.TeacherID != 0 {
		store.unlinkGroupFromTeacher(old.TeacherID, group.ID)
	}
	if group.SubjectID != old.SubjectID && old.SubjectID != 0 {
		store.unlinkGroupFromSubject(old.SubjectID, group.ID)
	}

	// insertOrUpdate never fails here: the id is known to hold a group
	_ = store.insertOrUpdate(group.ID, group, true)

	if group.SubjectID != 0 {
		store.linkGroupToSubject(group.SubjectID, group.ID)
	}
	if group.TeacherID != 0 {
		store.linkGroupToTeacher(group.TeacherID, group.ID)
		store.refreshCredits(group.TeacherID)
	}
}

// dropGroup deletes a group and its slots and unlinks it from its subject and teacher without reindexing
func (store *Store) dropGroup(id uint64) {
	group, ok := store.groups.get(id)
	if !ok {
		return
	}
	for _, slotID := range group.Slots {
		store.slots.remove(slotID)
	}
	for _, slot := range store.slots.all() {
		if slot.GroupID == id {
			store.slots.remove(slot.ID)
		}
	}
	if group.SubjectID != 0 {
		store.unlinkGroupFromSubject(group.SubjectID, id)
	}
	if group.TeacherID != 0 {
		store.unlinkGroupFromTeacher(group.TeacherID, id)
	}
	store.groups.remove(id)
}

func (store *Store) unlinkSlotFromGroup(groupID, slotID uint64) {
	group, ok := store.groups.get(groupID)
	if !ok || !lo.Contains(group.Slots, slotID) {
		return
	}
	group.Slots = lo.Without(group.Slots, slotID)
	store.groups.put(groupID, group)
	store.touch(groupID)
}

func (store *Store) validateGroup(group Group) error {
	if group.Credits < 0 {
		return invalidf("group %d has negative credits", group.ID)
	}
	if group.SubjectID != 0 && !store.subjects.has(group.SubjectID) {
		return NotFoundError{Kind: SubjectKind, ID: group.SubjectID}
	}
	if group.TeacherID != 0 {
		teacher, ok := store.users.get(group.TeacherID)
		if !ok {
			return NotFoundError{Kind: UserKind, ID: group.TeacherID}
		}
		if teacher.Role != Teacher {
			return invalidf("user %d is not a teacher", group.TeacherID)
		}
	}
	for _, id := range group.Slots {
		if !store.slots.has(id) {
			return NotFoundError{Kind: SlotKind, ID: id}
		}
	}
	return nil
}

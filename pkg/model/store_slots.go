package model

import (
	"go.uber.org/zap"
)

// AddSlot stores a copy of slot under a fresh id and appends it to its group. The slot must not overlap any
// existing slot of another group in the same place and time
func (store *Store) AddSlot(slot Slot) (Slot, error) {
	if err := store.validateSlot(slot); err != nil {
		return Slot{}, err
	}
	slot.ID = store.nextID
	if err := store.checkSlot(slot); err != nil {
		return Slot{}, err
	}

	slot.ID = store.allocate()
	if err := store.insertOrUpdate(slot.ID, slot, false); err != nil {
		return Slot{}, err
	}
	store.linkSlotToGroup(slot.GroupID, slot.ID)

	store.recorder.Mutation("add", SlotKind)
	store.logger.Debug("slot added",
		zap.Uint64("id", slot.ID),
		zap.Uint64("groupId", slot.GroupID),
		zap.String("weekDay", string(slot.WeekDay)),
		zap.String("location", slot.Location),
	)
	return slot, nil
}

// SetSlot replaces every field of the slot with the same id. Unless ignoreConflicts is set the new placement is
// checked against every other slot. Changing GroupID moves the slot between the groups' lists
func (store *Store) SetSlot(slot Slot, ignoreConflicts bool) (Slot, error) {
	old, ok := store.slots.get(slot.ID)
	if !ok {
		return Slot{}, NotFoundError{Kind: SlotKind, ID: slot.ID}
	}
	if err := store.validateSlot(slot); err != nil {
		return Slot{}, err
	}
	if !ignoreConflicts {
		if err := store.checkSlot(slot); err != nil {
			return Slot{}, err
		}
	}

	if slot.GroupID != old.GroupID {
		store.unlinkSlotFromGroup(old.GroupID, slot.ID)
		store.linkSlotToGroup(slot.GroupID, slot.ID)
	}
	if err := store.insertOrUpdate(slot.ID, slot, true); err != nil {
		return Slot{}, err
	}

	store.recorder.Mutation("set", SlotKind)
	store.logger.Debug("slot updated", zap.Uint64("id", slot.ID), zap.Bool("ignoreConflicts", ignoreConflicts))
	return slot, nil
}

// RmSlot removes the slot and detaches it from its group
func (store *Store) RmSlot(id uint64) error {
	slot, ok := store.slots.get(id)
	if !ok {
		return NotFoundError{Kind: SlotKind, ID: id}
	}

	store.unlinkSlotFromGroup(slot.GroupID, id)
	for _, group := range store.groups.all() {
		store.unlinkSlotFromGroup(group.ID, id)
	}
	store.slots.remove(id)
	store.reindex()

	store.recorder.Mutation("rm", SlotKind)
	store.logger.Debug("slot removed", zap.Uint64("id", id), zap.Uint64("groupId", slot.GroupID))
	return nil
}

func (store *Store) checkSlot(slot Slot) error {
	if other, found := FirstConflict(slot, store.slots.all(), true); found {
		store.recorder.Conflict(SlotKind)
		return ConflictError{Kind: SlotKind, ID: slot.ID, With: []uint64{other.ID}}
	}
	return nil
}

func (store *Store) linkSlotToGroup(groupID, slotID uint64) {
	group, ok := store.groups.get(groupID)
	if !ok {
		return
	}
	for _, id := range group.Slots {
		if id == slotID {
			return
		}
	}
	group.Slots = append(group.Slots, slotID)
	store.groups.put(groupID, group)
	store.touch(groupID)
}

func (store *Store) validateSlot(slot Slot) error {
	if !slot.WeekDay.Valid() {
		return invalidf("slot %d has unknown weekday %q", slot.ID, slot.WeekDay)
	}
	if !slot.Semester.Valid() {
		return invalidf("slot %d has unknown semester %q", slot.ID, slot.Semester)
	}
	if slot.EndTime <= slot.StartTime {
		return invalidf("slot %d ends at %v, before it starts at %v", slot.ID, Clock(slot.EndTime), Clock(slot.StartTime))
	}
	if !store.groups.has(slot.GroupID) {
		return NotFoundError{Kind: GroupKind, ID: slot.GroupID}
	}
	return nil
}

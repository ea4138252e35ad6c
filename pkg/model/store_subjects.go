package model

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AddSubject stores a copy of subject under a fresh id. Listed groups are moved into the new subject
func (store *Store) AddSubject(subject Subject) (Subject, error) {
	subject = subject.Clone()
	subject.Groups = lo.Uniq(subject.Groups)
	if err := store.validateSubject(subject); err != nil {
		return Subject{}, err
	}

	subject.ID = store.allocate()
	store.applySubjectGroups(subject.ID, subject.Groups, nil)
	if err := store.insertOrUpdate(subject.ID, subject, false); err != nil {
		return Subject{}, err
	}

	store.recorder.Mutation("add", SubjectKind)
	store.logger.Debug("subject added", zap.Uint64("id", subject.ID), zap.String("name", subject.Name))
	return subject.Clone(), nil
}

// SetSubject replaces every field of the subject with the same id. Dropped groups lose their subject and joined
// groups are moved into this one. Subjects carry no time information so no conflicts are checked
func (store *Store) SetSubject(subject Subject) (Subject, error) {
	old, ok := store.subjects.get(subject.ID)
	if !ok {
		return Subject{}, NotFoundError{Kind: SubjectKind, ID: subject.ID}
	}
	subject = subject.Clone()
	subject.Groups = lo.Uniq(subject.Groups)
	if err := store.validateSubject(subject); err != nil {
		return Subject{}, err
	}

	dropped, joined := lo.Difference(old.Groups, subject.Groups)
	store.applySubjectGroups(subject.ID, joined, dropped)
	if err := store.insertOrUpdate(subject.ID, subject, true); err != nil {
		return Subject{}, err
	}

	store.recorder.Mutation("set", SubjectKind)
	store.logger.Debug("subject updated",
		zap.Uint64("id", subject.ID),
		zap.Uint64s("joined", joined),
		zap.Uint64s("dropped", dropped),
	)
	return subject.Clone(), nil
}

// RmSubject removes the subject together with its groups and their slots; teachers of those groups are unassigned
func (store *Store) RmSubject(id uint64) error {
	subject, ok := store.subjects.get(id)
	if !ok {
		return NotFoundError{Kind: SubjectKind, ID: id}
	}

	owned := lo.Uniq(append(
		lo.Filter(subject.Groups, func(groupID uint64, _ int) bool { return store.groups.has(groupID) }),
		lo.FilterMap(store.groups.all(), func(group Group, _ int) (uint64, bool) {
			return group.ID, group.SubjectID == id
		})...,
	))
	for _, groupID := range owned {
		store.dropGroup(groupID)
	}
	store.subjects.remove(id)
	store.reindex()

	store.recorder.Mutation("rm", SubjectKind)
	store.logger.Debug("subject removed", zap.Uint64("id", id), zap.Uint64s("groups", owned))
	return nil
}

func (store *Store) applySubjectGroups(subjectID uint64, joined, dropped []uint64) {
	for _, id := range dropped {
		group, ok := store.groups.get(id)
		if ok && group.SubjectID == subjectID {
			group.SubjectID = 0
			store.groups.put(id, group)
			store.touch(id)
		}
	}
	for _, id := range joined {
		group, _ := store.groups.get(id)
		if group.SubjectID == subjectID {
			continue
		}
		if group.SubjectID != 0 {
			store.unlinkGroupFromSubject(group.SubjectID, id)
		}
		group.SubjectID = subjectID
		store.groups.put(id, group)
		store.touch(id)
	}
}

func (store *Store) unlinkGroupFromSubject(subjectID, groupID uint64) {
	subject, ok := store.subjects.get(subjectID)
	if !ok || !lo.Contains(subject.Groups, groupID) {
		return
	}
	subject.Groups = lo.Without(subject.Groups, groupID)
	store.subjects.put(subjectID, subject)
	store.touch(subjectID)
}

func (store *Store) linkGroupToSubject(subjectID, groupID uint64) {
	subject, ok := store.subjects.get(subjectID)
	if !ok || lo.Contains(subject.Groups, groupID) {
		return
	}
	subject.Groups = append(subject.Groups, groupID)
	store.subjects.put(subjectID, subject)
	store.touch(subjectID)
}

func (store *Store) validateSubject(subject Subject) error {
	if !subject.Semester.Valid() {
		return invalidf("subject %d has unknown semester %q", subject.ID, subject.Semester)
	}
	if subject.Credits < 0 {
		return invalidf("subject %d has negative credits", subject.ID)
	}
	for _, id := range subject.Groups {
		if !store.groups.has(id) {
			return NotFoundError{Kind: GroupKind, ID: id}
		}
	}
	return nil
}

package model

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AddUser stores a copy of user under a fresh id. Groups listed in user are assigned exactly as SetUser would
func (store *Store) AddUser(user User) (User, error) {
	user = user.Clone()
	user.Groups = lo.Uniq(user.Groups)
	if err := validateUser(user); err != nil {
		return User{}, err
	}
	// Validate assignments against a provisional id, nothing is written until they pass
	user.ID = store.nextID
	joined, dropped, err := store.planUserGroups(user, nil)
	if err != nil {
		return User{}, err
	}

	user.ID = store.allocate()
	store.applyUserGroups(user.ID, joined, dropped)
	user.AssignedCredits = store.creditsOf(user.Groups)
	if err := store.insertOrUpdate(user.ID, user, false); err != nil {
		return User{}, err
	}

	store.recorder.Mutation("add", UserKind)
	store.logger.Debug("user added", zap.Uint64("id", user.ID), zap.String("userName", user.UserName))
	return user.Clone(), nil
}

// SetUser replaces every field of the user with the same id. Newly listed groups are checked for time conflicts
// against the groups the user keeps; on success groups are (un)assigned and AssignedCredits is recomputed
func (store *Store) SetUser(user User) (User, error) {
	old, ok := store.users.get(user.ID)
	if !ok {
		return User{}, NotFoundError{Kind: UserKind, ID: user.ID}
	}
	user = user.Clone()
	user.Groups = lo.Uniq(user.Groups)
	if err := validateUser(user); err != nil {
		return User{}, err
	}

	joined, dropped, err := store.planUserGroups(user, old.Groups)
	if err != nil {
		return User{}, err
	}

	store.applyUserGroups(user.ID, joined, dropped)
	user.AssignedCredits = store.creditsOf(user.Groups)
	if err := store.insertOrUpdate(user.ID, user, true); err != nil {
		return User{}, err
	}

	store.recorder.Mutation("set", UserKind)
	store.logger.Debug("user updated",
		zap.Uint64("id", user.ID),
		zap.Uint64s("joined", joined),
		zap.Uint64s("dropped", dropped),
		zap.Float64("assignedCredits", user.AssignedCredits),
	)
	return user.Clone(), nil
}

// RmUser removes the user and unassigns it from every group it taught. The groups themselves survive
func (store *Store) RmUser(id uint64) error {
	if !store.users.has(id) {
		return NotFoundError{Kind: UserKind, ID: id}
	}

	for _, group := range store.groups.all() {
		if group.TeacherID == id {
			group.TeacherID = 0
			store.groups.put(group.ID, group)
			store.touch(group.ID)
		}
	}
	store.users.remove(id)
	store.reindex()

	store.recorder.Mutation("rm", UserKind)
	store.logger.Debug("user removed", zap.Uint64("id", id))
	return nil
}

// planUserGroups computes the groups joined and dropped by user and verifies that no joined group overlaps in time
// with the groups the user keeps or with groups joined before it
func (store *Store) planUserGroups(user User, oldGroups []uint64) (joined, dropped []uint64, err error) {
	for _, id := range user.Groups {
		if !store.groups.has(id) {
			return nil, nil, NotFoundError{Kind: GroupKind, ID: id}
		}
	}
	if user.Role == Admin && len(user.Groups) > 0 {
		return nil, nil, invalidf("user %d is an admin and cannot teach groups", user.ID)
	}

	dropped, joined = lo.Difference(oldGroups, user.Groups)

	kept := lo.FilterMap(lo.Without(oldGroups, dropped...), func(id uint64, _ int) (Group, bool) {
		return store.groups.get(id)
	})
	slots := store.slots.all()
	for _, id := range joined {
		group, _ := store.groups.get(id)
		if conflicting := GroupConflicts(group, kept, slots); len(conflicting) > 0 {
			store.recorder.Conflict(GroupKind)
			return nil, nil, ConflictError{
				Kind: GroupKind,
				ID:   group.ID,
				With: lo.Map(conflicting, func(other Group, _ int) uint64 { return other.ID }),
			}
		}
		kept = append(kept, group)
	}
	return joined, dropped, nil
}

func (store *Store) applyUserGroups(userID uint64, joined, dropped []uint64) {
	for _, id := range joined {
		group, _ := store.groups.get(id)
		if group.TeacherID == userID {
			continue
		}
		previous := group.TeacherID
		group.TeacherID = userID
		store.groups.put(id, group)
		store.touch(id)
		if previous != 0 {
			store.unlinkGroupFromTeacher(previous, id)
		}
	}
	for _, id := range dropped {
		group, ok := store.groups.get(id)
		if ok && group.TeacherID == userID {
			group.TeacherID = 0
			store.groups.put(id, group)
			store.touch(id)
		}
	}
}

func (store *Store) unlinkGroupFromTeacher(teacherID, groupID uint64) {
	teacher, ok := store.users.get(teacherID)
	if !ok || !lo.Contains(teacher.Groups, groupID) {
		return
	}
	teacher.Groups = lo.Without(teacher.Groups, groupID)
	teacher.AssignedCredits = store.creditsOf(teacher.Groups)
	store.users.put(teacherID, teacher)
	store.touch(teacherID)
}

func (store *Store) linkGroupToTeacher(teacherID, groupID uint64) {
	teacher, ok := store.users.get(teacherID)
	if !ok || lo.Contains(teacher.Groups, groupID) {
		return
	}
	teacher.Groups = append(teacher.Groups, groupID)
	store.users.put(teacherID, teacher)
	store.touch(teacherID)
}

// refreshCredits recomputes the credits a teacher is assigned after one of its groups changed
func (store *Store) refreshCredits(teacherID uint64) {
	teacher, ok := store.users.get(teacherID)
	if !ok {
		return
	}
	if credits := store.creditsOf(teacher.Groups); credits != teacher.AssignedCredits {
		teacher.AssignedCredits = credits
		store.users.put(teacherID, teacher)
		store.touch(teacherID)
	}
}

func (store *Store) creditsOf(groups []uint64) float64 {
	return lo.SumBy(groups, func(id uint64) float64 {
		group, _ := store.groups.get(id)
		return group.Credits
	})
}

func validateUser(user User) error {
	if !user.Role.Valid() {
		return invalidf("user %d has unknown role %q", user.ID, user.Role)
	}
	if user.MaxCredits < 0 {
		return invalidf("user %d has negative max credits", user.ID)
	}
	return nil
}

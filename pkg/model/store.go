package model

import (
	"fmt"

	"go.uber.org/zap"
)

// Recorder observes store activity. Implementations must be cheap; they run inside every mutation
type Recorder interface {
	Mutation(op string, kind Kind)
	Conflict(kind Kind)
}

type noopRecorder struct{}

func (noopRecorder) Mutation(string, Kind) {}
func (noopRecorder) Conflict(Kind)         {}

type indexEntry struct {
	kind    Kind
	version uint64
}

// Store owns a State and keeps its cross references consistent. It is not safe for concurrent use
type Store struct {
	name     string
	users    table[User]
	subjects table[Subject]
	groups   table[Group]
	slots    table[Slot]

	index       map[uint64]indexEntry
	nextID      uint64
	lastVersion uint64

	logger   *zap.Logger
	recorder Recorder
}

type StoreOption func(*Store)

func WithLogger(logger *zap.Logger) StoreOption {
	return func(store *Store) {
		if logger != nil {
			store.logger = logger
		}
	}
}

func WithRecorder(recorder Recorder) StoreOption {
	return func(store *Store) {
		if recorder != nil {
			store.recorder = recorder
		}
	}
}

func NewStore(options ...StoreOption) *Store {
	store := &Store{
		users:    newTable[User](0),
		subjects: newTable[Subject](0),
		groups:   newTable[Group](0),
		slots:    newTable[Slot](0),
		index:    make(map[uint64]indexEntry),
		nextID:   1,
		logger:   zap.NewNop(),
		recorder: noopRecorder{},
	}
	for _, option := range options {
		option(store)
	}
	return store
}

// Load replaces the store contents with state after validating its references. On error the store is left
// unchanged. Overlapping slots are accepted and logged as a warning
func (store *Store) Load(state State) error {
	if err := Validate(state); err != nil {
		return err
	}

	fresh := &Store{
		name:        state.Name,
		users:       newTable[User](len(state.Users)),
		subjects:    newTable[Subject](len(state.Subjects)),
		groups:      newTable[Group](len(state.Groups)),
		slots:       newTable[Slot](len(state.Slots)),
		index:       make(map[uint64]indexEntry),
		lastVersion: store.lastVersion,
	}
	for _, user := range state.Users {
		if err := fresh.insertOrUpdate(user.ID, user.Clone(), false); err != nil {
			return err
		}
	}
	for _, subject := range state.Subjects {
		if err := fresh.insertOrUpdate(subject.ID, subject.Clone(), false); err != nil {
			return err
		}
	}
	for _, group := range state.Groups {
		if err := fresh.insertOrUpdate(group.ID, group.Clone(), false); err != nil {
			return err
		}
	}
	for _, slot := range state.Slots {
		if err := fresh.insertOrUpdate(slot.ID, slot, false); err != nil {
			return err
		}
	}

	store.name = fresh.name
	store.users, store.subjects, store.groups, store.slots = fresh.users, fresh.subjects, fresh.groups, fresh.slots
	store.index = fresh.index
	store.lastVersion = fresh.lastVersion
	store.reindex()

	store.logger.Info("state loaded",
		zap.String("name", state.Name),
		zap.Int("users", store.users.len()),
		zap.Int("subjects", store.subjects.len()),
		zap.Int("groups", store.groups.len()),
		zap.Int("slots", store.slots.len()),
		zap.Uint64("nextId", store.nextID),
	)
	if placements, teachers := Conflicts(state), TeacherConflicts(state); len(placements)+len(teachers) > 0 {
		store.logger.Warn("state loaded with overlapping slots",
			zap.Any("placements", placements),
			zap.Any("teachers", teachers),
		)
	}
	return nil
}

// State returns a deep copy of the current contents
func (store *Store) State() State {
	state := State{
		Name:     store.name,
		Users:    store.users.all(),
		Subjects: store.subjects.all(),
		Groups:   store.groups.all(),
		Slots:    store.slots.all(),
	}
	return state.Clone()
}

func (store *Store) Name() string {
	return store.name
}

//** Lookups

// Resolve returns a copy of the User, Subject, Group or Slot with the given id
func (store *Store) Resolve(id uint64) (any, error) {
	entry, ok := store.index[id]
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	switch entry.kind {
	case UserKind:
		return store.User(id)
	case SubjectKind:
		return store.Subject(id)
	case GroupKind:
		return store.Group(id)
	default:
		return store.Slot(id)
	}
}

func (store *Store) User(id uint64) (User, error) {
	user, ok := store.users.get(id)
	if !ok {
		return User{}, NotFoundError{Kind: UserKind, ID: id}
	}
	return user.Clone(), nil
}

func (store *Store) Subject(id uint64) (Subject, error) {
	subject, ok := store.subjects.get(id)
	if !ok {
		return Subject{}, NotFoundError{Kind: SubjectKind, ID: id}
	}
	return subject.Clone(), nil
}

func (store *Store) Group(id uint64) (Group, error) {
	group, ok := store.groups.get(id)
	if !ok {
		return Group{}, NotFoundError{Kind: GroupKind, ID: id}
	}
	return group.Clone(), nil
}

func (store *Store) Slot(id uint64) (Slot, error) {
	slot, ok := store.slots.get(id)
	if !ok {
		return Slot{}, NotFoundError{Kind: SlotKind, ID: id}
	}
	return slot, nil
}

// Version returns the change stamp of the entity with the given id; it grows every time the entity's content changes
func (store *Store) Version(id uint64) (uint64, error) {
	entry, ok := store.index[id]
	if !ok {
		return 0, NotFoundError{ID: id}
	}
	return entry.version, nil
}

func (store *Store) Users(filter Filter) ([]User, error) {
	return listMatching(store.users.all(), filter, User.Clone)
}

func (store *Store) Subjects(filter Filter) ([]Subject, error) {
	return listMatching(store.subjects.all(), filter, Subject.Clone)
}

func (store *Store) Groups(filter Filter) ([]Group, error) {
	return listMatching(store.groups.all(), filter, Group.Clone)
}

func (store *Store) Slots(filter Filter) ([]Slot, error) {
	return listMatching(store.slots.all(), filter, Slot.Clone)
}

func listMatching[T any](rows []T, filter Filter, clone func(T) T) ([]T, error) {
	matcher, err := newMatcher[T](filter)
	if err != nil {
		return nil, err
	}
	matching := make([]T, 0, len(rows))
	for _, row := range rows {
		if matcher.Match(row) {
			matching = append(matching, clone(row))
		}
	}
	return matching, nil
}

//** Index maintenance

// insertOrUpdate registers entity under id. An existing id fails unless overwrite is set, in which case the
// entity is replaced and re-stamped only when its content differs
func (store *Store) insertOrUpdate(id uint64, entity any, overwrite bool) error {
	kind := kindOf(entity)
	entry, found := store.index[id]
	if found {
		if !overwrite || entry.kind != kind {
			return DuplicateIDError{ID: id}
		}
		if store.unchanged(id, entity) {
			return nil
		}
	}

	store.lastVersion++
	store.index[id] = indexEntry{kind: kind, version: store.lastVersion}
	switch entity := entity.(type) {
	case User:
		store.users.put(id, entity)
	case Subject:
		store.subjects.put(id, entity)
	case Group:
		store.groups.put(id, entity)
	case Slot:
		store.slots.put(id, entity)
	}
	if id >= store.nextID {
		store.nextID = id + 1
	}
	return nil
}

func (store *Store) unchanged(id uint64, entity any) bool {
	switch entity := entity.(type) {
	case User:
		old, ok := store.users.get(id)
		return ok && old.Equal(entity)
	case Subject:
		old, ok := store.subjects.get(id)
		return ok && old.Equal(entity)
	case Group:
		old, ok := store.groups.get(id)
		return ok && old.Equal(entity)
	case Slot:
		old, ok := store.slots.get(id)
		return ok && old.Equal(entity)
	}
	return false
}

// reindex rebuilds the id index from the four tables, purging removed ids, and moves the id watermark past the
// largest id in use. Versions of surviving entities are kept
func (store *Store) reindex() {
	index := make(map[uint64]indexEntry, len(store.index))
	var maxID uint64

	register := func(id uint64, kind Kind) {
		entry, ok := store.index[id]
		if !ok || entry.kind != kind {
			store.lastVersion++
			entry = indexEntry{kind: kind, version: store.lastVersion}
		}
		index[id] = entry
		maxID = max(maxID, id)
	}
	for _, id := range store.users.ids {
		register(id, UserKind)
	}
	for _, id := range store.subjects.ids {
		register(id, SubjectKind)
	}
	for _, id := range store.groups.ids {
		register(id, GroupKind)
	}
	for _, id := range store.slots.ids {
		register(id, SlotKind)
	}

	store.index = index
	store.nextID = maxID + 1
}

func (store *Store) allocate() uint64 {
	id := store.nextID
	store.nextID++
	return id
}

// touch re-stamps an entity that was edited in place by a cascade
func (store *Store) touch(id uint64) {
	if entry, ok := store.index[id]; ok {
		store.lastVersion++
		entry.version = store.lastVersion
		store.index[id] = entry
	}
}

func kindOf(entity any) Kind {
	switch entity.(type) {
	case User:
		return UserKind
	case Subject:
		return SubjectKind
	case Group:
		return GroupKind
	case Slot:
		return SlotKind
	}
	panic(fmt.Sprintf("unsupported entity type %T", entity))
}

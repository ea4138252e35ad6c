package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	adminID     uint64 = 1
	teacherID   uint64 = 2
	otherID     uint64 = 3
	networksID  uint64 = 10
	databasesID uint64 = 11
	lectureID   uint64 = 20
	labID       uint64 = 21
	dbLectureID uint64 = 22
	lectureSlot uint64 = 30
	labSlot     uint64 = 31
	altSlot     uint64 = 32
	dbSlot      uint64 = 33
)

func hm(hour, minute uint64) uint64 {
	return hour*60 + minute
}

// fixtureState holds two subjects: Networks (lecture + lab with an alternate room) and Databases, whose only
// lecture overlaps in time with the Networks lecture in a different room
func fixtureState() State {
	return State{
		Name: "fixture",
		Users: []User{
			{ID: adminID, Role: Admin, UserName: "admin", FirstName: "Ana", LastName: "Garcia", MaxCredits: 12},
			{ID: teacherID, Role: Teacher, UserName: "jlopez", FirstName: "Juan", LastName: "Lopez", MaxCredits: 18},
			{ID: otherID, Role: Teacher, UserName: "mruiz", FirstName: "Marta", LastName: "Ruiz", MaxCredits: 20},
		},
		Subjects: []Subject{
			{ID: networksID, Name: "Redes", Short: "R", Degree: "Informática", Credits: 6, Semester: Fall, Codes: []string{"123456"}, Groups: []uint64{lectureID, labID}},
			{ID: databasesID, Name: "Bases de Datos", Short: "BD", Degree: "Informática", Credits: 3, Semester: Fall, Codes: []string{"654321"}, Groups: []uint64{dbLectureID}},
		},
		Groups: []Group{
			{ID: lectureID, Name: "A", SubjectID: networksID, Credits: 4.5, Slots: []uint64{lectureSlot}},
			{ID: labID, Name: "A1", SubjectID: networksID, Credits: 1.5, IsLab: true, Slots: []uint64{labSlot, altSlot}},
			{ID: dbLectureID, Name: "A", SubjectID: databasesID, Credits: 1.5, Slots: []uint64{dbSlot}},
		},
		Slots: []Slot{
			{ID: lectureSlot, WeekDay: Monday, StartTime: hm(9, 0), EndTime: hm(10, 50), Location: "Aula 1", Semester: Fall, GroupID: lectureID},
			{ID: labSlot, WeekDay: Tuesday, StartTime: hm(9, 0), EndTime: hm(10, 50), Location: "Laboratorio 1", Semester: Fall, GroupID: labID},
			{ID: altSlot, WeekDay: Tuesday, StartTime: hm(9, 0), EndTime: hm(10, 50), Location: "Aula 2", Semester: Fall, GroupID: labID},
			{ID: dbSlot, WeekDay: Monday, StartTime: hm(10, 0), EndTime: hm(10, 50), Location: "Aula 3", Semester: Fall, GroupID: dbLectureID},
		},
	}
}

func newFixtureStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, store.Load(fixtureState()))
	return store
}

// sameState compares states through the entities' structural equality, where nil and empty lists are equal
func sameState(a, b State) bool {
	if a.Name != b.Name ||
		len(a.Users) != len(b.Users) ||
		len(a.Subjects) != len(b.Subjects) ||
		len(a.Groups) != len(b.Groups) ||
		len(a.Slots) != len(b.Slots) {
		return false
	}
	for i := range a.Users {
		if !a.Users[i].Equal(b.Users[i]) {
			return false
		}
	}
	for i := range a.Subjects {
		if !a.Subjects[i].Equal(b.Subjects[i]) {
			return false
		}
	}
	for i := range a.Groups {
		if !a.Groups[i].Equal(b.Groups[i]) {
			return false
		}
	}
	for i := range a.Slots {
		if !a.Slots[i].Equal(b.Slots[i]) {
			return false
		}
	}
	return true
}

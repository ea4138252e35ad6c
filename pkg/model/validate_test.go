package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	scenarios := []struct {
		name     string
		mutate   func(state *State)
		expected error
	}{
		{"fixture is valid", func(*State) {}, nil},
		{"missing id", func(state *State) { state.Users[0].ID = 0 }, ErrInvalid},
		{"unknown weekday", func(state *State) { state.Slots[0].WeekDay = "sun" }, ErrInvalid},
		{"slot ending before it starts", func(state *State) { state.Slots[0].EndTime = hm(8, 0) }, ErrInvalid},
		{"dangling slot reference", func(state *State) { state.Groups[2].Slots = []uint64{dbSlot, 999} }, ErrNotFound},
		{"group not listed by its subject", func(state *State) { state.Subjects[1].Groups = nil }, ErrInvalid},
		{"group listed by the wrong subject", func(state *State) { state.Subjects[1].Groups = []uint64{dbLectureID, labID} }, ErrInvalid},
		{"teacher without back reference", func(state *State) { state.Groups[0].TeacherID = teacherID }, ErrInvalid},
		{"admin holding a group", func(state *State) {
			state.Users[0].Groups = []uint64{lectureID}
			state.Groups[0].TeacherID = adminID
		}, ErrInvalid},
		{"overlapping placements are accepted", func(state *State) { state.Slots[3].Location = "Aula 1" }, nil},
		{"teacher with overlapping groups is accepted", func(state *State) {
			state.Users[1].Groups = []uint64{lectureID, dbLectureID}
			state.Groups[0].TeacherID = teacherID
			state.Groups[2].TeacherID = teacherID
		}, nil},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Arrange
			state := fixtureState()
			scenario.mutate(&state)

			// Act
			err := Validate(state)

			// Assert
			if scenario.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, scenario.expected)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	t.Run("Fixture has none", func(t *testing.T) {
		assert.Empty(t, Conflicts(fixtureState()))
	})

	t.Run("Reports overlapping pairs", func(t *testing.T) {
		state := fixtureState()
		state.Slots[3].Location = "Aula 1"

		pairs := Conflicts(state)

		require.Len(t, pairs, 1)
		assert.Equal(t, [2]uint64{lectureSlot, dbSlot}, pairs[0])
		assert.NoError(t, Validate(state))
	})
}

func TestTeacherConflicts(t *testing.T) {
	t.Run("Fixture has none", func(t *testing.T) {
		assert.Empty(t, TeacherConflicts(fixtureState()))
	})

	t.Run("Reports groups of one teacher overlapping in different rooms", func(t *testing.T) {
		// Arrange
		state := fixtureState()
		state.Users[1].Groups = []uint64{lectureID, dbLectureID}
		state.Groups[0].TeacherID = teacherID
		state.Groups[2].TeacherID = teacherID

		// Act
		pairs := TeacherConflicts(state)

		// Assert
		assert.Equal(t, [][2]uint64{{lectureID, dbLectureID}}, pairs)
	})
}

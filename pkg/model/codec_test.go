package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRoundTrip(t *testing.T) {
	// Arrange
	store := newFixtureStore(t)
	teacher, _ := store.User(teacherID)
	teacher.Groups = []uint64{lectureID, labID}
	_, err := store.SetUser(teacher)
	require.NoError(t, err)

	// Act
	dump, err := DumpState(store.State())
	require.NoError(t, err)
	decoded, err := StateFromJSON([]byte(dump))
	require.NoError(t, err)
	reloaded := NewStore()
	err = reloaded.Load(decoded)

	// Assert
	require.NoError(t, err)
	assert.True(t, sameState(store.State(), reloaded.State()))
	again, err := DumpState(reloaded.State())
	require.NoError(t, err)
	assert.Equal(t, dump, again)
}

func TestDumpRoundTripAfterSlotEdits(t *testing.T) {
	reload := func(t *testing.T, store *Store) *Store {
		t.Helper()
		dump, err := DumpState(store.State())
		require.NoError(t, err)
		decoded, err := StateFromJSON([]byte(dump))
		require.NoError(t, err)
		reloaded := NewStore()
		require.NoError(t, reloaded.Load(decoded))
		return reloaded
	}

	t.Run("Slot placed over another with conflicts ignored", func(t *testing.T) {
		// Arrange
		store := newFixtureStore(t)
		slot, err := store.Slot(dbSlot)
		require.NoError(t, err)
		slot.Location = "Aula 1"
		_, err = store.SetSlot(slot, true)
		require.NoError(t, err)

		// Act
		reloaded := reload(t, store)

		// Assert
		assert.True(t, sameState(store.State(), reloaded.State()))
		assert.Equal(t, [][2]uint64{{lectureSlot, dbSlot}}, Conflicts(reloaded.State()))
	})

	t.Run("Slot moved under a teacher holding both groups", func(t *testing.T) {
		// Arrange
		store := newFixtureStore(t)
		slot, err := store.Slot(dbSlot)
		require.NoError(t, err)
		monday := slot
		slot.WeekDay = Wednesday
		_, err = store.SetSlot(slot, false)
		require.NoError(t, err)
		teacher, err := store.User(teacherID)
		require.NoError(t, err)
		teacher.Groups = []uint64{lectureID, dbLectureID}
		_, err = store.SetUser(teacher)
		require.NoError(t, err)
		_, err = store.SetSlot(monday, false)
		require.NoError(t, err)

		// Act
		reloaded := reload(t, store)

		// Assert
		assert.True(t, sameState(store.State(), reloaded.State()))
		assert.Equal(t, [][2]uint64{{lectureID, dbLectureID}}, TeacherConflicts(reloaded.State()))
	})
}

func TestStateFromJSON(t *testing.T) {
	t.Run("Serialized field names", func(t *testing.T) {
		data := `{
			"name": "tiny",
			"users": [{"id": 1, "userRole": "teacher", "userName": "jgarcia", "maxCredits": 18, "groups": [3]}],
			"subjects": [{"id": 2, "name": "Redes", "credits": 4.5, "semester": "spring", "codes": ["123456"], "groups": [3]}],
			"groups": [{"id": 3, "name": "A", "subjectId": 2, "credits": 3, "isLab": false, "slots": [4], "teacherId": 1}],
			"slots": [{"id": 4, "weekDay": "wed", "startTime": 600, "endTime": 710, "location": "Aula 4", "semester": "spring", "groupId": 3}]
		}`

		state, err := StateFromJSON([]byte(data))

		require.NoError(t, err)
		assert.Equal(t, "tiny", state.Name)
		assert.Equal(t, Teacher, state.Users[0].Role)
		assert.Equal(t, 4.5, state.Subjects[0].Credits)
		assert.Equal(t, uint64(1), state.Groups[0].TeacherID)
		assert.Equal(t, Wednesday, state.Slots[0].WeekDay)
		assert.Equal(t, uint64(710), state.Slots[0].EndTime)
		assert.NoError(t, Validate(state))
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := StateFromJSON([]byte(`{"name": `))
		assert.Error(t, err)
	})

	t.Run("From file", func(t *testing.T) {
		dump, err := DumpState(fixtureState())
		require.NoError(t, err)
		file := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(file, []byte(dump), 0o644))

		state, err := StateFromFile(file)

		require.NoError(t, err)
		assert.True(t, sameState(fixtureState(), state))
	})
}

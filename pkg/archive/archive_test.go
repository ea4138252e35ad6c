package archive

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState(name string) model.State {
	return model.State{
		Name: name,
		Users: []model.User{
			{ID: 1, Role: model.Teacher, UserName: "jgarcia", FirstName: "Juan", LastName: "Garcia Ruiz", MaxCredits: 18, Groups: []uint64{3}, AssignedCredits: 1.5},
		},
		Subjects: []model.Subject{
			{ID: 2, Name: "Redes", Short: "R", Degree: "Informática", Credits: 3, Semester: model.Fall, Codes: []string{"123456", "654321"}, Groups: []uint64{3}},
		},
		Groups: []model.Group{
			{ID: 3, Name: "A", SubjectID: 2, Credits: 1.5, Slots: []uint64{4}, TeacherID: 1},
		},
		Slots: []model.Slot{
			{ID: 4, WeekDay: model.Thursday, StartTime: 600, EndTime: 650, Location: "Aula 5", Semester: model.Fall, GroupID: 3},
		},
	}
}

func TestSaveAndRestore(t *testing.T) {
	// Arrange
	ctx := context.Background()
	archive := New(NewMemoryStore(), nil)
	state := sampleState("first")

	// Act
	token, err := archive.Save(ctx, state)
	require.NoError(t, err)
	restored, err := archive.Restore(ctx, token)

	// Assert
	require.NoError(t, err)
	_, err = uuid.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, state, restored)
}

func TestRestoreUnknownToken(t *testing.T) {
	archive := New(NewMemoryStore(), nil)

	_, err := archive.Restore(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrMissing)
}

func TestRestoreLatest(t *testing.T) {
	t.Run("Pops tokens in reverse save order", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		archive := New(NewMemoryStore(), nil)
		firstToken, err := archive.Save(ctx, sampleState("first"))
		require.NoError(t, err)
		secondToken, err := archive.Save(ctx, sampleState("second"))
		require.NoError(t, err)

		// Act
		second, popped, err := archive.RestoreLatest(ctx, nil)
		require.NoError(t, err)
		first, poppedAgain, err := archive.RestoreLatest(ctx, nil)
		require.NoError(t, err)
		_, _, err = archive.RestoreLatest(ctx, nil)

		// Assert
		assert.Equal(t, "second", second.Name)
		assert.Equal(t, secondToken, popped)
		assert.Equal(t, "first", first.Name)
		assert.Equal(t, firstToken, poppedAgain)
		assert.ErrorIs(t, err, ErrEmptyStack)
	})

	t.Run("Popped states stay restorable by token", func(t *testing.T) {
		ctx := context.Background()
		archive := New(NewMemoryStore(), nil)
		token, err := archive.Save(ctx, sampleState("kept"))
		require.NoError(t, err)
		_, _, err = archive.RestoreLatest(ctx, nil)
		require.NoError(t, err)

		state, err := archive.Restore(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "kept", state.Name)
	})

	t.Run("Rejected states keep their token", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		archive := New(NewMemoryStore(), nil)
		token, err := archive.Save(ctx, sampleState("rejected"))
		require.NoError(t, err)
		rejection := errors.New("store refused")

		// Act
		_, _, err = archive.RestoreLatest(ctx, func(model.State) error { return rejection })

		// Assert
		assert.ErrorIs(t, err, rejection)
		state, popped, err := archive.RestoreLatest(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, token, popped)
		assert.Equal(t, "rejected", state.Name)
	})

	t.Run("Empty stack", func(t *testing.T) {
		_, _, err := New(NewMemoryStore(), nil).RestoreLatest(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyStack)
	})
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore(context.Background(), RedisConfig{Addr: "127.0.0.1:1"}, nil)

	assert.Error(t, err)
}

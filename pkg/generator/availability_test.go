package generator

import (
	"testing"

	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAvailability(t *testing.T) {
	availability := NewAvailability([]string{"Laboratorio 1", "Laboratorio 2"}, []string{"Aula 1"})

	assert.Equal(t, 2*3*5*HoursPerDay, availability.Total())
	assert.Equal(t, HoursPerDay, availability.Hours(AvailabilityKey{LabRoom, model.Spring, "Laboratorio 2", model.Friday}))
	assert.Zero(t, availability.Hours(AvailabilityKey{LabRoom, model.Spring, "Aula 1", model.Friday}))
}

func TestChoose(t *testing.T) {
	labs := []string{"Laboratorio 1", "Laboratorio 2"}
	halls := []string{"Aula 1", "Aula 2"}

	t.Run("Ties keep registration order", func(t *testing.T) {
		availability := NewAvailability(labs, halls)

		choice, err := availability.Choose(LabRoom, model.Fall, false, "")

		require.NoError(t, err)
		assert.Equal(t, Choice{Location: "Laboratorio 1", WeekDay: model.Monday}, choice)
	})

	t.Run("Most hours left wins", func(t *testing.T) {
		// Arrange
		availability := NewAvailability(labs, halls)
		for _, day := range model.WeekDays {
			availability.Consume(AvailabilityKey{LabRoom, model.Fall, "Laboratorio 1", day}, 1)
		}
		availability.Consume(AvailabilityKey{LabRoom, model.Fall, "Laboratorio 2", model.Monday}, 2)

		// Act
		choice, err := availability.Choose(LabRoom, model.Fall, false, "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Choice{Location: "Laboratorio 2", WeekDay: model.Tuesday}, choice)
	})

	t.Run("Avoided weekday is skipped", func(t *testing.T) {
		availability := NewAvailability(labs, halls)

		choice, err := availability.Choose(LectureRoom, model.Spring, false, model.Monday)

		require.NoError(t, err)
		assert.Equal(t, "Aula 1", choice.Location)
		assert.Equal(t, model.Tuesday, choice.WeekDay)
	})

	t.Run("Two days share the room", func(t *testing.T) {
		// Arrange
		availability := NewAvailability(labs, halls)
		availability.Consume(AvailabilityKey{LectureRoom, model.Fall, "Aula 1", model.Wednesday}, 1)

		// Act
		choice, err := availability.Choose(LectureRoom, model.Fall, true, model.Tuesday)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Aula 1", choice.Location)
		assert.Equal(t, model.Monday, choice.WeekDay)
		assert.Equal(t, model.Thursday, choice.OtherWeekDay)
	})

	t.Run("No rooms of the requested kind", func(t *testing.T) {
		availability := NewAvailability(nil, halls)

		_, err := availability.Choose(LabRoom, model.Fall, false, "")

		assert.ErrorIs(t, err, ErrNoAvailability)
	})
}

func TestConsume(t *testing.T) {
	availability := NewAvailability([]string{"Laboratorio 1"}, nil)
	key := AvailabilityKey{LabRoom, model.Fall, "Laboratorio 1", model.Monday}

	availability.Consume(key, 2)
	availability.Consume(key, 1)
	availability.Consume(AvailabilityKey{LabRoom, model.Fall, "Laboratorio 9", model.Monday}, 1)

	assert.Equal(t, HoursPerDay-3, availability.Hours(key))
	assert.Equal(t, 2*5*HoursPerDay-3, availability.Total())
	assert.Equal(t, "labfall|Laboratorio 1|mon", key.String())
}

package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	scenarios := map[string]string{
		"Ampliación de Redes":               "AR",
		"Redes y Sistemas Operativos":       "RSO",
		"La Programación Declarativa":       "PD",
		"Fundamentos de la Programación II": "FP2",
		"Bases de Datos IV":                 "BD4",
		"Álgebra Lineal":                    "AL",
		"E-learning":                        "EL",
		"Ética, legislación y profesión":    "ELP",
		"":                                  "?",
	}
	for name, expected := range scenarios {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, Initials(name))
		})
	}
}

func TestRoman(t *testing.T) {
	scenarios := map[int]string{1: "I", 2: "II", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 2024: "MMXXIV"}
	for n, expected := range scenarios {
		assert.Equal(t, expected, Roman(n), "roman %d", n)
	}
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "Etica", FoldAccents("Ética"))
	assert.Equal(t, "Munoz Ibanez", FoldAccents("Muñoz Ibañez"))
	assert.Equal(t, "Redes", FoldAccents("Redes"))
}

func TestUserName(t *testing.T) {
	assert.Equal(t, "jgarcia", UserName("Juan", "Garcia Lopez"))
	assert.Equal(t, "jlmunoz", UserName("Jose Luis", "Muñoz Ortega"))
	assert.Equal(t, "mpena", UserName("Maria", "Peña"))
}

func TestNamer(t *testing.T) {
	t.Run("Numeric suffixes without separator", func(t *testing.T) {
		names := newNamer("")

		assert.Equal(t, "jgarcia", names.unique("jgarcia"))
		assert.Equal(t, "jgarcia1", names.unique("jgarcia"))
		assert.Equal(t, "jgarcia2", names.unique("jgarcia"))
		assert.Equal(t, "mruiz", names.unique("mruiz"))
	})

	t.Run("Repeated subject titles become editions", func(t *testing.T) {
		// Arrange
		names := newNamer(" ")
		generated := []string{names.unique("Redes"), names.unique("Redes"), names.unique("Cálculo"), names.unique("Redes")}
		repeated := names.repeated()

		// Act
		renamed := make([]string, 0, len(generated))
		for _, name := range generated {
			name, _ = romanize(name, repeated)
			renamed = append(renamed, name)
		}

		// Assert
		assert.Equal(t, []string{"Redes"}, repeated)
		assert.Equal(t, []string{"Redes I", "Redes II", "Cálculo", "Redes III"}, renamed)
		assert.Equal(t, "R3", Initials(renamed[3]))
	})
}

func TestRandomHelpers(t *testing.T) {
	random := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		value := randomInRange(random, 2, 4)
		assert.GreaterOrEqual(t, value, 2)
		assert.LessOrEqual(t, value, 4)

		code := randomString(random, 6, digits)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}

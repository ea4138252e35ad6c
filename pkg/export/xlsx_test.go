package export

import (
	"bytes"
	"testing"

	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	// Arrange
	var buffer bytes.Buffer

	// Act
	err := WriteXLSX(&buffer, timetable())

	// Assert
	require.NoError(t, err)
	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"fall", "spring", "teachers"}, f.GetSheetList())

	cells := map[string]string{
		"A1": "time",
		"B1": "mon",
		"F1": "fri",
		"A2": "09:00",
		"A12": "19:00",
		"B2": "R A 09:00-10:50 Aula 1",
		"B3": "BD A 10:00-10:50 Aula 3",
		"C2": "R A1 09:00-10:50 Aula 2\nR A1 09:00-10:50 Laboratorio 1",
		"C3": "",
		"D2": "",
	}
	for coordinates, expected := range cells {
		value, err := f.GetCellValue("fall", coordinates)
		require.NoError(t, err)
		assert.Equal(t, expected, value, coordinates)
	}

	rows, err := f.GetRows("spring")
	require.NoError(t, err)
	for _, row := range rows[1:] {
		assert.LessOrEqual(t, len(row), 1, "spring has no slots")
	}
}

func TestWriteXLSXTeachers(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteXLSX(&buffer, timetable()))

	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(teachersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"userName", "firstName", "lastName", "maxCredits", "assignedCredits", "groups"}, rows[0])
	assert.Equal(t, []string{"jlopez", "Juan", "Lopez", "18", "6", "R A, R A1"}, rows[1])
	assert.Equal(t, []string{"mruiz", "Marta", "Ruiz", "20", "0"}, rows[2])
}

func TestWriteXLSXEmptyState(t *testing.T) {
	var buffer bytes.Buffer

	err := WriteXLSX(&buffer, model.State{Name: "empty"})

	require.NoError(t, err)
	f, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(teachersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, writeRow(f, "Sheet1", 3, "jgarcia", 1.5))
	first, err := f.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	second, err := f.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, []string{"jgarcia", "1.5"}, []string{first, second})

	err = writeRow(f, "missing", 1, "jgarcia")
	var missing excelize.ErrSheetNotExist
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "missing", missing.SheetName)
}

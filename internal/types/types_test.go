package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableEmpty(t *testing.T) {
	var nilTable *Table
	assert.True(t, nilTable.Empty())
	assert.Nil(t, nilTable.Header())
	assert.Nil(t, nilTable.DataRows())
	assert.Equal(t, 0, nilTable.ColumnCount())

	assert.True(t, (&Table{}).Empty())
}

func TestTableHeaderAndDataRows(t *testing.T) {
	table := &Table{Rows: []Row{
		{"Part", "Qty", "Notes"},
		{"Resistor", "10"},
		{"Capacitor", "5", "100nF", "extra"},
	}}

	assert.False(t, table.Empty())
	assert.Equal(t, Row{"Part", "Qty", "Notes"}, table.Header())
	assert.Equal(t, 3, table.ColumnCount())
	assert.Len(t, table.DataRows(), 2)
	assert.Equal(t, Row{"Resistor", "10"}, table.DataRows()[0])
}

func TestTableHeaderOnly(t *testing.T) {
	table := &Table{Rows: []Row{{"Part"}}}
	assert.Empty(t, table.DataRows())
	assert.Equal(t, 1, table.ColumnCount())
}

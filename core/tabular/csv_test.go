package tabular

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	rows := []Row{
		{"NativeName": "Axe", "Category": "2:Weapons/Melee", "Damage": "12"},
		{"NativeName": "Water", "Category": "5:Food/Drink", "BasePricePerFlOz": "1"},
	}

	header := Header(rows, []string{"BasePricePerFlOz"})
	assert.Equal(t, []string{"Category", "Damage", "NativeName"}, header)
}

func TestHeader_Empty(t *testing.T) {
	assert.Empty(t, Header(nil, nil))
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{"A": "1", "B": "two, with comma", "Extra": "ignored"},
		{"A": "3"},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"A", "B"}, rows)
	require.NoError(t, err)

	assert.Equal(t, "A,B\n1,\"two, with comma\"\n3,\n", buf.String())
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "0.1", "items.csv")

	err := WriteCSVFile(path, []string{"A"}, []Row{{"A": "x"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\nx\n", string(data))
}

func TestRow(t *testing.T) {
	r := Row{"A": "1", "B": ""}
	assert.True(t, r.Has("A"))
	assert.False(t, r.Has("B"))

	_, ok := r.Lookup("B")
	assert.True(t, ok)

	c := r.Clone()
	c["A"] = "2"
	assert.Equal(t, "1", r["A"])
}

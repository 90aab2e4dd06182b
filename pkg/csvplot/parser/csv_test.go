package parser

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

func TestReadCSVInfersKinds(t *testing.T) {
	input := "id,ratio,label,sparse\n" +
		"1,0.5,foo,\n" +
		"2,1.5,bar,7\n" +
		"3,2,baz,NA\n"

	ds, err := ReadCSV("mixed.csv", strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.Equal(t, "mixed.csv", ds.Name)
	assert.Equal(t, 3, ds.NRows())
	assert.Equal(t, []models.Column{
		{Name: "id", Kind: models.KindInteger},
		{Name: "ratio", Kind: models.KindFloat},
		{Name: "label", Kind: models.KindText},
		{Name: "sparse", Kind: models.KindFloat, Missing: 2},
	}, ds.Columns)

	ids, ok := ds.Float64s("id")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, ids)

	sparse, ok := ds.Float64s("sparse")
	require.True(t, ok)
	require.Len(t, sparse, 3)
	assert.True(t, math.IsNaN(sparse[0]))
	assert.Equal(t, 7.0, sparse[1])
	assert.True(t, math.IsNaN(sparse[2]))

	_, ok = ds.Float64s("label")
	assert.False(t, ok)
	_, ok = ds.Float64s("missing")
	assert.False(t, ok)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	ds, err := ReadCSV("empty.csv", strings.NewReader("a,b,c\n"), ',')
	require.NoError(t, err)

	assert.Equal(t, 0, ds.NRows())
	require.Len(t, ds.Columns, 3)
	for _, c := range ds.Columns {
		assert.Equal(t, models.KindFloat, c.Kind, c.Name)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV("blank.csv", strings.NewReader(""), ',')
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestReadCSVInconsistentFields(t *testing.T) {
	_, err := ReadCSV("bad.csv", strings.NewReader("a,b\n1,2\n3\n"), ',')
	require.Error(t, err)

	var perr *csv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestReadCSVDelimiterAndBOM(t *testing.T) {
	input := "\xEF\xBB\xBFx;y\n1;10\n\n2;100\n"

	ds, err := ReadCSV("semi.csv", strings.NewReader(input), ';')
	require.NoError(t, err)

	assert.Equal(t, "x", ds.Columns[0].Name)
	assert.Equal(t, 2, ds.NRows())
}

func TestReadCSVDuplicateHeaders(t *testing.T) {
	ds, err := ReadCSV("dup.csv", strings.NewReader("v,v\n1,2\n"), ',')
	require.NoError(t, err)

	ys, ok := ds.Float64s("v.1")
	require.True(t, ok)
	assert.Equal(t, []float64{2}, ys)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,10\n2,100\n3,1000\n"), 0o644))

	ds, err := LoadCSV(path, ',')
	require.NoError(t, err)
	assert.Equal(t, "data.csv", ds.Name)
	assert.Len(t, ds.NumericColumns(), 2)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

package ranking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infradash/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestParse_FlattensPriorityLevels(t *testing.T) {
	t.Parallel()

	records, err := Parse([]byte(`{"1": ["A", "B"], "2": ["C"]}`), "roads")
	require.NoError(t, err)

	assert.ElementsMatch(t, []model.RankingRecord{
		{Region: "A", Priority: 1, Industry: "roads"},
		{Region: "B", Priority: 1, Industry: "roads"},
		{Region: "C", Priority: 2, Industry: "roads"},
	}, records)
}

func TestParse_OrdersByNumericPriority(t *testing.T) {
	t.Parallel()

	records, err := Parse([]byte(`{"10": ["X"], "2": ["Y", "Z"]}`), "energy")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Y", records[0].Region)
	assert.Equal(t, "Z", records[1].Region)
	assert.Equal(t, "X", records[2].Region)
}

func TestParse_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	records, err := Parse([]byte(`{"1": ["A"], "3": ["A"]}`), "water")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"high": ["A"]}`), "x")
	assert.Error(t, err)

	_, err = Parse([]byte(`{"1": "A"}`), "x")
	assert.Error(t, err)

	_, err = Parse([]byte(`not json`), "x")
	assert.Error(t, err)
}

func TestIndustryFromFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.Industry("roads"), IndustryFromFile("roads.json"))
	assert.Equal(t, model.Industry("heat.supply"), IndustryFromFile("/data/heat.supply.JSON"))
}

func TestLoadDir_IgnoresNonJSONAndSubdirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "roads.json", `{"1": ["A", "B"], "2": ["C"]}`)
	writeFile(t, dir, "energy.json", `{"3": ["A"]}`)
	writeFile(t, dir, "notes.txt", `{"1": ["Z"]}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))
	writeFile(t, filepath.Join(dir, "nested.json"), "water.json", `{"1": ["Q"]}`)

	byIndustry, err := LoadDir(dir, Options{})
	require.NoError(t, err)

	assert.Equal(t, []model.Industry{"energy", "roads"}, Industries(byIndustry))
	assert.Equal(t, 4, Count(byIndustry))

	flat := Flatten(byIndustry)
	require.Len(t, flat, 4)
	assert.Equal(t, model.Industry("energy"), flat[0].Industry)
}

func TestLoadDir_MalformedFileIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "roads.json", `{"1": ["A"]}`)
	writeFile(t, dir, "broken.json", `{"1": [`)

	_, err := LoadDir(dir, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLoadDir_SkipInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "roads.json", `{"1": ["A"]}`)
	writeFile(t, dir, "broken.json", `{"one": ["A"]}`)

	byIndustry, err := LoadDir(dir, Options{SkipInvalid: true})
	require.NoError(t, err)
	assert.Equal(t, []model.Industry{"roads"}, Industries(byIndustry))
}

func TestLoadDir_NotADirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "roads.json", `{"1": ["A"]}`)

	_, err := LoadDir(filepath.Join(dir, "roads.json"), Options{})
	assert.Error(t, err)

	_, err = LoadDir(filepath.Join(dir, "missing"), Options{})
	assert.Error(t, err)
}

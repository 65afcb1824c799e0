package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradebill/internal/core/entity"
	"tradebill/internal/core/id"
)

type mockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

func TestExtractDBColumns_EmbeddedStructs(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{"id", "deletion_mark", "version", "code", "name"}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap_EmbeddedStructs(t *testing.T) {
	cat := mockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code: "TEST",
		Name: "Test Name",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
}

func TestStructToMap_IgnoresUntaggedFields(t *testing.T) {
	type row struct {
		Visible string `db:"visible"`
		Skipped string `db:"-"`
		NoTag   string
	}

	m := StructToMap(row{Visible: "a", Skipped: "b", NoTag: "c"})

	assert.Equal(t, map[string]any{"visible": "a"}, m)
}

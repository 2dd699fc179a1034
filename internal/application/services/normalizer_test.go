package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardfinder/backend/internal/application/services"
	"github.com/wardfinder/backend/pkg/rawjson"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  services.SourceShape
	}{
		{"array", `[{"name":"A"}]`, services.ShapeFlat},
		{"empty array", `[]`, services.ShapeFlat},
		{"departments and wards", `{"Departments":[],"Wards":[]}`, services.ShapeCategorized},
		{"wards only", `{"Wards":[{"name":"W"}]}`, services.ShapeCategorized},
		{"departments as object", `{"Departments":{"a":[]}}`, services.ShapeCategorized},
		{"departments truthy string", `{"Departments":"yes"}`, services.ShapeCategorized},
		{"departments truthy number", `{"Departments":2}`, services.ShapeCategorized},
		{"departments null", `{"Departments":null,"Level 1":[]}`, services.ShapeSectioned},
		{"falsy collections", `{"Departments":0,"Wards":""}`, services.ShapeSectioned},
		{"wards false", `{"Wards":false}`, services.ShapeSectioned},
		{"sections", `{"Level 1":[{"name":"X-Ray"}]}`, services.ShapeSectioned},
		{"empty object", `{}`, services.ShapeSectioned},
		{"string", `"hello"`, services.ShapeUnknown},
		{"number", `42`, services.ShapeUnknown},
		{"null", `null`, services.ShapeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ClassifyShape(rawjson.MustDecode(tt.input)))
		})
	}
}

func names(t *testing.T, records []rawjson.Value) []string {
	t.Helper()
	out := make([]string, 0, len(records))
	for _, r := range records {
		name, ok := r.Get("name")
		require.True(t, ok, "record without name: %v", r)
		out = append(out, name.String())
	}
	return out
}

func TestNormalizeSource_FlatListUnchanged(t *testing.T) {
	source := rawjson.MustDecode(`[{"name":"A"},{"name":"B"},{"name":"C"}]`)

	records := services.NormalizeSource(source)
	assert.Equal(t, []string{"A", "B", "C"}, names(t, records))
}

func TestNormalizeSource_DepartmentsBeforeWards(t *testing.T) {
	source := rawjson.MustDecode(`{
		"Wards": [{"name":"Ward 1"}],
		"Departments": [{"name":"Cardiology"},{"name":"Radiology"}],
		"Level 9": [{"name":"ignored"}]
	}`)

	records := services.NormalizeSource(source)
	assert.Equal(t, []string{"Cardiology", "Radiology", "Ward 1"}, names(t, records))
}

func TestNormalizeSource_CategorizedNonArrayContributesNothing(t *testing.T) {
	source := rawjson.MustDecode(`{"Departments":{"Level 1":[{"name":"A"}]},"Wards":[{"name":"W"}]}`)

	records := services.NormalizeSource(source)
	assert.Equal(t, []string{"W"}, names(t, records))
}

func TestNormalizeSource_SectionedTwoLevels(t *testing.T) {
	source := rawjson.MustDecode(`{
		"Level 2": {"North": [{"name":"B"},{"name":"C"}], "Note": "lift out of order", "South": [{"name":"D"}]},
		"Level 1": [{"name":"A"}],
		"Meta": "v2",
		"Deep": {"Wing": {"Bay": [{"name":"too deep"}]}}
	}`)

	records := services.NormalizeSource(source)
	assert.Equal(t, []string{"B", "C", "D", "A"}, names(t, records))
}

func TestNormalizeSource_FalsyDepartmentsFallsThroughToSections(t *testing.T) {
	source := rawjson.MustDecode(`{"Departments":null,"Ground":[{"name":"Reception"}]}`)

	records := services.NormalizeSource(source)
	assert.Equal(t, []string{"Reception"}, names(t, records))
}

func TestNormalizeSource_UnknownShapeIsEmpty(t *testing.T) {
	for _, input := range []string{`"text"`, `12`, `true`, `null`} {
		records := services.NormalizeSource(rawjson.MustDecode(input))
		assert.NotNil(t, records, input)
		assert.Empty(t, records, input)
	}
}

func TestNormalizeThenMap_PreservesLeafCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"flat", `[{"name":"A"},{"title":"B"},{}]`, 3},
		{"categorized", `{"Departments":[{"name":"A"},{"name":"B"}],"Wards":[{"name":"C"},{"name":"D"}]}`, 4},
		{"sectioned", `{"Level 1":[{"name":"A"}],"Level 2":{"East":[{"name":"B"},{"name":"C"}],"West":[]}}`, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := services.ToUniform(services.NormalizeSource(rawjson.MustDecode(tt.input)))
			assert.Len(t, records, tt.want)
		})
	}
}

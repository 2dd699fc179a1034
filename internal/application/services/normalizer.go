package services

import (
	"github.com/wardfinder/backend/pkg/rawjson"
)

const (
	departmentsKey = "Departments"
	wardsKey       = "Wards"
)

// NormalizeSource flattens a raw source into its records, preserving the order
// they appear in the file. Unknown layouts produce an empty slice.
func NormalizeSource(source rawjson.Value) []rawjson.Value {
	switch ClassifyShape(source) {
	case ShapeFlat:
		return source.Elements()
	case ShapeCategorized:
		return flattenCategorized(source)
	case ShapeSectioned:
		return flattenSections(source)
	default:
		return []rawjson.Value{}
	}
}

// flattenCategorized returns Departments followed by Wards. A collection that
// is missing or not an array contributes nothing.
func flattenCategorized(source rawjson.Value) []rawjson.Value {
	records := []rawjson.Value{}
	for _, key := range []string{departmentsKey, wardsKey} {
		if collection, ok := source.Get(key); ok && collection.IsArray() {
			records = append(records, collection.Elements()...)
		}
	}
	return records
}

// flattenSections walks section values in file order. Arrays contribute their
// elements; objects contribute the elements of their own array values. Deeper
// nesting is ignored.
func flattenSections(source rawjson.Value) []rawjson.Value {
	records := []rawjson.Value{}
	for _, section := range source.Members() {
		switch {
		case section.Value.IsArray():
			records = append(records, section.Value.Elements()...)
		case section.Value.IsObject():
			for _, sub := range section.Value.Members() {
				if sub.Value.IsArray() {
					records = append(records, sub.Value.Elements()...)
				}
			}
		}
	}
	return records
}

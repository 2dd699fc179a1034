package services

import (
	"encoding/json"
	"fmt"

	"github.com/wardfinder/backend/pkg/rawjson"
	"github.com/xeipuuv/gojsonschema"
)

// SourceShape identifies which known layout a hospital data file uses
type SourceShape int

const (
	// ShapeUnknown is any document none of the known layouts describe
	ShapeUnknown SourceShape = iota
	// ShapeFlat is a top-level array of records
	ShapeFlat
	// ShapeCategorized is an object with "Departments" and/or "Wards" collections
	ShapeCategorized
	// ShapeSectioned is an object keyed by section label (usually a floor)
	ShapeSectioned
)

func (s SourceShape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeCategorized:
		return "categorized"
	case ShapeSectioned:
		return "sectioned"
	default:
		return "unknown"
	}
}

const flatSchema = `{"type": "array"}`

// A categorized source is recognised by a truthy Departments or Wards value.
// A falsy one (null, false, 0, "") leaves the object to the sectioned layout.
const categorizedSchema = `{
	"type": "object",
	"definitions": {
		"truthy": {
			"anyOf": [
				{"type": ["object", "array"]},
				{"type": "boolean", "enum": [true]},
				{"type": "string", "minLength": 1},
				{"type": "number", "not": {"minimum": 0, "maximum": 0}}
			]
		}
	},
	"anyOf": [
		{"required": ["Departments"], "properties": {"Departments": {"$ref": "#/definitions/truthy"}}},
		{"required": ["Wards"], "properties": {"Wards": {"$ref": "#/definitions/truthy"}}}
	]
}`

const sectionedSchema = `{"type": "object"}`

type shapeVariant struct {
	shape  SourceShape
	schema *gojsonschema.Schema
}

// shapeVariants are tried in order; the first schema a document satisfies wins.
var shapeVariants = []shapeVariant{
	{shape: ShapeFlat, schema: mustCompileSchema("flat", flatSchema)},
	{shape: ShapeCategorized, schema: mustCompileSchema("categorized", categorizedSchema)},
	{shape: ShapeSectioned, schema: mustCompileSchema("sectioned", sectionedSchema)},
}

func mustCompileSchema(name, schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("services: invalid %s shape schema: %v", name, err))
	}
	return compiled
}

// ClassifyShape returns the layout of a raw source
func ClassifyShape(source rawjson.Value) SourceShape {
	doc, err := json.Marshal(source)
	if err != nil {
		return ShapeUnknown
	}
	documentLoader := gojsonschema.NewBytesLoader(doc)

	for _, variant := range shapeVariants {
		result, err := variant.schema.Validate(documentLoader)
		if err != nil {
			continue
		}
		if result.Valid() {
			return variant.shape
		}
	}

	return ShapeUnknown
}

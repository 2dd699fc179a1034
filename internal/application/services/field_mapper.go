package services

import (
	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/pkg/rawjson"
)

// fieldRule lists the raw keys that may carry a field, most preferred first
type fieldRule struct {
	keys     []string
	fallback string
}

var (
	nameRule         = fieldRule{keys: []string{"name", "title"}, fallback: entities.UnknownLocationName}
	floorRule        = fieldRule{keys: []string{"floor", "level"}}
	areaColorRule    = fieldRule{keys: []string{"areaColor", "color"}}
	bestEntranceRule = fieldRule{keys: []string{"bestEntrance", "entrance"}}
	locationRule     = fieldRule{keys: []string{"location"}}
	typeRule         = fieldRule{keys: []string{"type"}}
)

// firstTruthy returns the first truthy value among keys. 0, "", false and
// null count as absent.
func firstTruthy(raw rawjson.Value, keys ...string) (rawjson.Value, bool) {
	for _, key := range keys {
		if v, ok := raw.Get(key); ok && v.Truthy() {
			return v, true
		}
	}
	return rawjson.Value{}, false
}

func hasValue(raw rawjson.Value, r fieldRule) bool {
	_, ok := firstTruthy(raw, r.keys...)
	return ok
}

func (r fieldRule) resolve(raw rawjson.Value) string {
	if v, ok := firstTruthy(raw, r.keys...); ok {
		return v.String()
	}
	return r.fallback
}

// ToUniform maps raw records onto LocationRecord. It never fails: a record
// that is not an object maps like an empty object.
func ToUniform(items []rawjson.Value) []entities.LocationRecord {
	records := make([]entities.LocationRecord, 0, len(items))
	for _, item := range items {
		records = append(records, MapRecord(item))
	}
	return records
}

// MapRecord maps a single raw record
func MapRecord(raw rawjson.Value) entities.LocationRecord {
	record := entities.LocationRecord{
		Name:         nameRule.resolve(raw),
		Floor:        floorRule.resolve(raw),
		AreaColor:    areaColorRule.resolve(raw),
		BestEntrance: bestEntranceRule.resolve(raw),
		Location:     locationRule.resolve(raw),
	}

	switch explicit, ok := firstTruthy(raw, typeRule.keys...); {
	case ok:
		record.Type = explicit.String()
	case hasValue(raw, locationRule):
		record.Type = entities.LocationTypeDepartment
	default:
		record.Type = entities.LocationTypeArea
	}

	return record
}

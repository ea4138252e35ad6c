package model

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Filter selects entities whose fields equal every value present in the filter. Keys are the serialized field
// names (e.g. "userRole", "subjectId"); values are converted to the field's type before comparing.
// An empty or nil filter matches everything
type Filter map[string]any

type matcher[T any] struct {
	fields map[string]any
}

func newMatcher[T any](filter Filter) (matcher[T], error) {
	if len(filter) == 0 {
		return matcher[T]{}, nil
	}

	// Decode the filter into a typed probe so that e.g. int literals compare equal to uint64 ids
	var probe T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &probe,
	})
	if err != nil {
		return matcher[T]{}, err
	}
	if err := decoder.Decode(map[string]any(filter)); err != nil {
		return matcher[T]{}, fmt.Errorf("%w: bad filter: %v", ErrInvalid, err)
	}

	probeFields, err := fieldsOf(probe)
	if err != nil {
		return matcher[T]{}, err
	}
	fields := make(map[string]any, len(filter))
	for key := range filter {
		fields[key] = probeFields[key]
	}
	return matcher[T]{fields: fields}, nil
}

func (m matcher[T]) Match(candidate T) bool {
	if len(m.fields) == 0 {
		return true
	}
	candidateFields, err := fieldsOf(candidate)
	if err != nil {
		return false
	}
	for key, want := range m.fields {
		if !reflect.DeepEqual(normalize(candidateFields[key]), normalize(want)) {
			return false
		}
	}
	return true
}

func fieldsOf(entity any) (map[string]any, error) {
	fields := make(map[string]any)
	if err := mapstructure.Decode(entity, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// normalize makes nil and empty slices compare equal
func normalize(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice && rv.Len() == 0 {
		return nil
	}
	return value
}

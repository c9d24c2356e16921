package model

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Extra holds client-supplied fields a record has no typed field for.
// They are stored alongside the record and written back at the top level.
type Extra map[string]any

// jsonNames lists the JSON keys of the struct type of v; fields tagged "-" are left out
func jsonNames(v any) map[string]bool {
	names := map[string]bool{}
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = true
	}
	return names
}

// splitExtra returns the keys of data that are not in known
func splitExtra(data []byte, known map[string]bool) (Extra, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var extra Extra
	for key, value := range raw {
		if known[key] {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[key] = v
	}
	return extra, nil
}

// mergeExtra marshals typed and adds every extra key it does not already carry
func mergeExtra(typed any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, taken := merged[key]; taken {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = encoded
	}
	return json.Marshal(merged)
}

// Without returns a copy of e minus keys
func (e Extra) Without(keys ...string) Extra {
	if len(e) == 0 {
		return nil
	}
	out := make(Extra, len(e))
	for k, v := range e {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package lpsapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lps-admin/internal/core/domain"
)

// ListResult is a list normalized from any accepted envelope shape.
// Warning is set when the shape was not recognized and Items is empty.
type ListResult[T any] struct {
	Items   []T
	Warning string
}

// DecodeList normalizes a list response. Accepted shapes are a bare array,
// {"data": [...]} and {"<key>": [...]} for any of keys. Anything else yields
// an empty list and a warning, never an error.
func DecodeList[T any](raw json.RawMessage, keys ...string) ListResult[T] {
	label := "list"
	if len(keys) > 0 {
		label = keys[0]
	}

	if arr, ok := findArray(raw, keys); ok {
		var items []T
		if err := json.Unmarshal(arr, &items); err == nil {
			if items == nil {
				items = []T{}
			}
			return ListResult[T]{Items: items}
		}
	}

	return ListResult[T]{
		Items:   []T{},
		Warning: fmt.Sprintf("unexpected %s response shape", label),
	}
}

func findArray(raw json.RawMessage, keys []string) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}

	switch trimmed[0] {
	case '[':
		return trimmed, true
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, false
		}
		for _, key := range append([]string{"data"}, keys...) {
			if v, ok := obj[key]; ok && isArray(v) {
				return v, true
			}
		}
	}
	return nil, false
}

// DecodeOne decodes a single record from {"data": {...}} or a bare object.
// {"data": null} is reported as domain.ErrNotFound.
func DecodeOne[T any](raw json.RawMessage) (T, error) {
	var zero T

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, fmt.Errorf("%w: expected an object", ErrInvalidResponse)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	target := json.RawMessage(trimmed)
	if v, ok := obj["data"]; ok {
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			return zero, domain.ErrNotFound
		case len(v) > 0 && v[0] == '{':
			target = v
		}
	}

	var out T
	if err := json.Unmarshal(target, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}

func isArray(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '['
}

// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package gdscript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"grimm.is/gdscript-docs/internal/errors"
)

// LoadFile reads and decodes a JSON dump from disk.
func LoadFile(path string) (ProjectInfo, *Classes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectInfo{}, nil, errors.Attr(
			errors.Wrap(err, errors.KindIO, "failed to read class dump"), "file", path)
	}
	info, classes, err := Decode(bytes.NewReader(data))
	if err != nil {
		return ProjectInfo{}, nil, errors.Attr(err, "file", path)
	}
	return info, classes, nil
}

// Decode parses a JSON dump from r and loads it.
func Decode(r io.Reader) (ProjectInfo, *Classes, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return ProjectInfo{}, nil, errors.Wrap(err, errors.KindSchema, "invalid JSON")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return ProjectInfo{}, nil, errors.Errorf(errors.KindSchema, "top level must be an object, got %s", typeName(raw))
	}
	return Load(obj)
}

// Load converts a decoded JSON object into typed entities. Required keys are
// the project name and version and the "classes" array. Every class needs a
// name, a description and the members, signals, enums, constants and methods
// arrays; every item in those arrays needs a name and a description. Only
// "inherits" and the per-item details (types, defaults, arguments) may be
// absent.
func Load(raw map[string]any) (ProjectInfo, *Classes, error) {
	var info ProjectInfo
	var err error

	if info.Name, err = requireString(raw, "name", ""); err != nil {
		return ProjectInfo{}, nil, err
	}
	if info.Version, err = requireString(raw, "version", ""); err != nil {
		return ProjectInfo{}, nil, err
	}
	if info.Description, err = optString(raw, "description", ""); err != nil {
		return ProjectInfo{}, nil, err
	}

	items, err := requireArray(raw, "classes", "")
	if err != nil {
		return ProjectInfo{}, nil, err
	}

	classes := make([]*Class, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("classes[%d]", i)
		obj, err := object(item, path)
		if err != nil {
			return ProjectInfo{}, nil, err
		}
		c, err := loadClass(obj, path)
		if err != nil {
			return ProjectInfo{}, nil, err
		}
		classes = append(classes, c)
	}

	set, err := NewClasses(classes...)
	if err != nil {
		return ProjectInfo{}, nil, err
	}
	return info, set, nil
}

func loadClass(obj map[string]any, path string) (*Class, error) {
	c := &Class{}
	var err error

	if c.Name, err = requireString(obj, "name", path); err != nil {
		return nil, err
	}
	if c.Inherits, err = optional(obj, path, "inherits"); err != nil {
		return nil, err
	}
	if c.Path, err = optString(obj, "path", path); err != nil {
		return nil, err
	}
	if c.Description, err = requireString(obj, "description", path); err != nil {
		return nil, err
	}

	if c.Members, err = loadItems(obj, "members", path, loadMember); err != nil {
		return nil, err
	}
	if c.Signals, err = loadItems(obj, "signals", path, loadSignal); err != nil {
		return nil, err
	}
	if c.Enums, err = loadItems(obj, "enums", path, loadEnum); err != nil {
		return nil, err
	}
	if c.Constants, err = loadItems(obj, "constants", path, loadConstant); err != nil {
		return nil, err
	}
	if c.Methods, err = loadItems(obj, "methods", path, loadMethod); err != nil {
		return nil, err
	}
	return c, nil
}

// loadItems maps a required array of objects through fn, preserving order.
func loadItems[T any](obj map[string]any, key, path string, fn func(map[string]any, string) (T, error)) ([]T, error) {
	items, err := requireArray(obj, key, path)
	if err != nil {
		return nil, err
	}
	return mapItems(items, key, path, fn)
}

func mapItems[T any](items []any, key, path string, fn func(map[string]any, string) (T, error)) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s.%s[%d]", path, key, i)
		m, err := object(item, itemPath)
		if err != nil {
			return nil, err
		}
		v, err := fn(m, itemPath)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func loadMember(obj map[string]any, path string) (Member, error) {
	var m Member
	var err error
	if m.Name, err = requireString(obj, "name", path); err != nil {
		return m, err
	}
	if m.Description, err = requireString(obj, "description", path); err != nil {
		return m, err
	}
	if m.Type, err = optString(obj, "data_type", path); err != nil {
		return m, err
	}
	if v, ok := lookup(obj, "default_value"); ok {
		m.Default = Some(formatValue(v))
	}
	if m.Setter, err = optString(obj, "setter", path); err != nil {
		return m, err
	}
	if m.Getter, err = optString(obj, "getter", path); err != nil {
		return m, err
	}
	if m.Signature, err = optString(obj, "signature", path); err != nil {
		return m, err
	}
	return m, nil
}

func loadSignal(obj map[string]any, path string) (Signal, error) {
	var s Signal
	var err error
	if s.Name, err = requireString(obj, "name", path); err != nil {
		return s, err
	}
	if s.Description, err = requireString(obj, "description", path); err != nil {
		return s, err
	}
	if s.Signature, err = optString(obj, "signature", path); err != nil {
		return s, err
	}
	args, _, err := optArray(obj, "arguments", path)
	if err != nil {
		return s, err
	}
	for i, a := range args {
		name, ok := a.(string)
		if !ok {
			return s, schemaErr(fmt.Sprintf("%s.arguments[%d]", path, i), "expected string, got "+typeName(a))
		}
		s.Arguments = append(s.Arguments, name)
	}
	return s, nil
}

func loadEnum(obj map[string]any, path string) (Enum, error) {
	var e Enum
	var err error
	if e.Name, err = requireString(obj, "name", path); err != nil {
		return e, err
	}
	if e.Description, err = requireString(obj, "description", path); err != nil {
		return e, err
	}
	raw, ok := lookup(obj, "value")
	if !ok {
		return e, nil
	}
	vals, isObject := raw.(map[string]any)
	if !isObject {
		return e, schemaErr(path+".value", "expected object, got "+typeName(raw))
	}
	// Objects lose key order in decoding; order by value, then name.
	for name, v := range vals {
		n, err := toInt(v, path+".value."+name)
		if err != nil {
			return e, err
		}
		e.Values = append(e.Values, EnumValue{Name: name, Value: n})
	}
	sort.Slice(e.Values, func(i, j int) bool {
		if e.Values[i].Value != e.Values[j].Value {
			return e.Values[i].Value < e.Values[j].Value
		}
		return e.Values[i].Name < e.Values[j].Name
	})
	return e, nil
}

func loadConstant(obj map[string]any, path string) (Constant, error) {
	var c Constant
	var err error
	if c.Name, err = requireString(obj, "name", path); err != nil {
		return c, err
	}
	if c.Description, err = requireString(obj, "description", path); err != nil {
		return c, err
	}
	if c.Type, err = optString(obj, "data_type", path); err != nil {
		return c, err
	}
	if v, ok := lookup(obj, "value"); ok {
		c.Value = formatValue(v)
	}
	return c, nil
}

func loadMethod(obj map[string]any, path string) (Method, error) {
	var m Method
	var err error
	if m.Name, err = requireString(obj, "name", path); err != nil {
		return m, err
	}
	if m.Description, err = requireString(obj, "description", path); err != nil {
		return m, err
	}
	if m.ReturnType, err = optString(obj, "return_type", path); err != nil {
		return m, err
	}
	if m.Signature, err = optString(obj, "signature", path); err != nil {
		return m, err
	}
	if v, ok := lookup(obj, "static"); ok {
		b, isBool := v.(bool)
		if !isBool {
			return m, schemaErr(path+".static", "expected bool, got "+typeName(v))
		}
		m.Static = b
	}
	args, _, err := optArray(obj, "arguments", path)
	if err != nil {
		return m, err
	}
	m.Arguments, err = mapItems(args, "arguments", path, func(a map[string]any, argPath string) (Argument, error) {
		var arg Argument
		var err error
		if arg.Name, err = requireString(a, "name", argPath); err != nil {
			return arg, err
		}
		arg.Type, err = optString(a, "type", argPath)
		return arg, err
	})
	return m, err
}

// optional reads a nullable string; a missing key or null is absent.
func optional(obj map[string]any, path, key string) (Optional[string], error) {
	v, ok := lookup(obj, key)
	if !ok {
		return None[string](), nil
	}
	s, isString := v.(string)
	if !isString {
		return None[string](), schemaErr(join(path, key), "expected string, got "+typeName(v))
	}
	return Some(s), nil
}

func requireString(obj map[string]any, key, path string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", schemaErr(join(path, key), "missing required key")
	}
	s, isString := v.(string)
	if !isString {
		return "", schemaErr(join(path, key), "expected string, got "+typeName(v))
	}
	return s, nil
}

func requireArray(obj map[string]any, key, path string) ([]any, error) {
	arr, ok, err := optArray(obj, key, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaErr(join(path, key), "missing required key")
	}
	return arr, nil
}

func optString(obj map[string]any, key, path string) (string, error) {
	v, ok := lookup(obj, key)
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", schemaErr(join(path, key), "expected string, got "+typeName(v))
	}
	return s, nil
}

func optArray(obj map[string]any, key, path string) ([]any, bool, error) {
	v, ok := lookup(obj, key)
	if !ok {
		return nil, false, nil
	}
	arr, isArray := v.([]any)
	if !isArray {
		return nil, false, schemaErr(join(path, key), "expected array, got "+typeName(v))
	}
	return arr, true, nil
}

func object(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErr(path, "expected object, got "+typeName(v))
	}
	return m, nil
}

// lookup returns the value at key; null counts as absent.
func lookup(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func toInt(v any, path string) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	case float64:
		if n == math.Trunc(n) {
			return int64(n), nil
		}
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, schemaErr(path, "expected integer, got "+typeName(v))
}

// formatValue renders a JSON literal as it should appear in a table cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func schemaErr(path, msg string) error {
	return errors.Attr(errors.Errorf(errors.KindSchema, "%s: %s", path, msg), "path", path)
}

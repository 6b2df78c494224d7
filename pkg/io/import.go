package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/George-Ogden/dbg/pkg/errors"
)

// Object is the decoded form of a JSON object, YAML mapping or TOML table.
type Object = orderedmap.OrderedMap[string, any]

// Input formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var extensions = map[string]string{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// FormatFromPath infers the format of a file from its extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensions[ext]; ok {
		return format, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot infer format of %q, use one of %s", path, strings.Join(errors.Formats, ", "))
}

// Decode reads a single document in the named format from r.
// Decode does not close r.
func Decode(r io.Reader, format string) (any, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return ReadJSON(r)
	}
}

// Import reads the file at path. An empty format is inferred from the
// extension.
func Import(path, format string) (any, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, format)
}

// ReadJSON decodes a JSON document, keeping object keys in order.
func ReadJSON(r io.Reader) (any, error) {
	var v jsonValue
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return v.v, nil
}

// jsonValue decodes any JSON value. Objects go through OrderedMap, whose
// decoder visits keys in document order and hands each value back to
// jsonValue.
type jsonValue struct{ v any }

func (j *jsonValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '{':
		fields := orderedmap.New[string, jsonValue]()
		if err := fields.UnmarshalJSON(data); err != nil {
			return err
		}
		obj := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](fields.Len()))
		for p := fields.Oldest(); p != nil; p = p.Next() {
			obj.Set(p.Key, p.Value.v)
		}
		j.v = obj
	case '[':
		var items []jsonValue
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		list := make([]any, len(items))
		for i, item := range items {
			list[i] = item.v
		}
		j.v = list
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if n, ok := v.(json.Number); ok {
			v = number(n)
		}
		j.v = v
	}
	return nil
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// ReadYAML decodes a YAML document, keeping mapping keys in order.
func ReadYAML(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}
	return fromYAML(v), nil
}

func fromYAML(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		obj := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(v)))
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			obj.Set(key, fromYAML(item.Value))
		}
		return obj
	case []any:
		for i := range v {
			v[i] = fromYAML(v[i])
		}
		return v
	case uint64:
		if v <= 1<<63-1 {
			return int64(v)
		}
	case int:
		return int64(v)
	}
	return v
}

// ReadTOML decodes a TOML document. Keys and tables keep the order they
// are defined in; tables inside arrays of tables are sorted by key.
func ReadTOML(r io.Reader) (any, error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
	}

	root := orderedmap.New[string, any]()
	for _, key := range md.Keys() {
		parent, ok := tomlParent(root, raw, key)
		if !ok {
			continue
		}
		name := key[len(key)-1]
		existing, found := parent.Delete(name)
		if obj, isObj := existing.(*Object); found && isObj {
			parent.Set(name, obj)
			continue
		}
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		parent.Set(name, fromTOML(v))
	}
	return root, nil
}

// tomlParent walks to the table holding key, adding tables that were only
// defined implicitly. It fails for keys inside arrays of tables, which are
// set whole with their array.
func tomlParent(root *Object, raw map[string]any, key toml.Key) (*Object, bool) {
	parent := root
	for i, part := range key[:len(key)-1] {
		child, ok := parent.Get(part)
		if !ok {
			v, found := lookup(raw, key[:i+1])
			if !found {
				return nil, false
			}
			child = fromTOML(v)
			parent.Set(part, child)
		}
		if parent, ok = child.(*Object); !ok {
			return nil, false
		}
	}
	return parent, true
}

func lookup(raw map[string]any, key toml.Key) (any, bool) {
	var v any = raw
	for _, part := range key {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = m[part]; !ok {
			return nil, false
		}
	}
	return v, true
}

func fromTOML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(v)))
		for _, k := range keys {
			obj.Set(k, fromTOML(v[k]))
		}
		return obj
	case []map[string]any:
		list := make([]any, len(v))
		for i, m := range v {
			list[i] = fromTOML(m)
		}
		return list
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = fromTOML(item)
		}
		return list
	}
	return v
}

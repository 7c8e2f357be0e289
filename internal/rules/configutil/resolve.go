// Package configutil decodes rule options into typed rule configs.
package configutil

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Resolve layers opts over defaults and decodes the result into T by koanf
// tag. Keys missing from opts keep their default, including slices. An
// option that cannot be decoded makes Resolve return defaults.
func Resolve[T any](opts map[string]any, defaults T) T {
	if len(opts) == 0 {
		return defaults
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return defaults
	}
	if err := k.Load(confmap.Provider(opts, ""), nil); err != nil {
		return defaults
	}

	var out T
	if err := k.Unmarshal("", &out); err != nil {
		return defaults
	}
	return out
}

// Coerce turns the dynamic config handed to a rule into T. It accepts T, *T
// and raw option maps; anything else yields defaults.
func Coerce[T any](config any, defaults T) T {
	switch v := config.(type) {
	case T:
		return v
	case *T:
		if v != nil {
			return *v
		}
	case map[string]any:
		return Resolve(v, defaults)
	}
	return defaults
}

// CheckKeys rejects the first option (in sorted order) that names no field
// of T.
func CheckKeys[T any](opts map[string]any) error {
	known := Keys[T]()
	for _, key := range slices.Sorted(maps.Keys(opts)) {
		if !slices.Contains(known, key) {
			return fmt.Errorf("unknown option %q (valid: %s)", key, strings.Join(known, ", "))
		}
	}
	return nil
}

// Keys lists the koanf option names of T in field order. It is nil for
// non-struct types.
func Keys[T any]() []string {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	for i := range typ.NumField() {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("koanf"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

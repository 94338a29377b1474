// helpers.go

package main

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// get pointer of given value
func ptr[T any](v T) *T {
	val := v
	return &val
}

// standardize given JSON (JWCC) bytes
func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()

	return ast.Pack(), nil
}

// get a value with given key from tool arguments
//
// (JSON numbers arrive as float64, arrays as []any)
func funcArg[T any](args map[string]any, key string) (*T, error) {
	if v, exists := args[key]; exists {
		if cast, ok := v.(T); ok {
			return &cast, nil
		}
		return nil, fmt.Errorf(
			"tool argument '%s' (%T) could not be cast to %T",
			key,
			v,
			*new(T),
		)
	}

	return nil, fmt.Errorf("tool argument '%s' was not given", key)
}

// truncate given string for logs and error messages
func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length] + "..."
}

// prettify given thing in JSON format
func prettify(v any) string {
	if bytes, err := json.MarshalIndent(v, "", "  "); err == nil {
		return string(bytes)
	}
	return fmt.Sprintf("%+v", v)
}

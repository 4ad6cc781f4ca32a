package recipeschema

// Helpers for walking loosely typed JSON-LD values. Every helper is total:
// a value of the wrong shape yields the zero result, never a panic.

// firstOf unwraps an array to its first element. Non-array values are
// returned as-is; empty arrays yield nil.
func firstOf(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	if len(arr) == 0 {
		return nil
	}
	return arr[0]
}

// asString returns v as a string if it is one.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// fieldString returns the named field of v as a string, when v is an
// object holding a string there.
func fieldString(v any, key string) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	return asString(m[key])
}

package store

import "github.com/bytedance/sonic"

// Codec record: sonic, sama dengan JSON encoder fiber di main.go.
func encode(v any) (Raw, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Raw(b), nil
}

func decode(b Raw, v any) error {
	return sonic.Unmarshal(b, v)
}

// fieldEquals cek apakah field string top-level pada record bernilai value.
func fieldEquals(b Raw, field, value string) bool {
	var m map[string]any
	if err := sonic.Unmarshal(b, &m); err != nil {
		return false
	}
	s, ok := m[field].(string)
	return ok && s == value
}

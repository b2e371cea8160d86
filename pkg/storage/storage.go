// Package storage is a small typed key-value store used for client-side
// persistence (credential, confirmed-view set). Values are opaque bytes;
// JSON schema validation happens at the boundary so malformed persisted
// data degrades to "absent" instead of propagating.
package storage

import "encoding/json"

type Store interface {
	// Get returns nil with no error when the key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// GetJSON decodes the stored value into v. It returns false when the key
// is absent, the read fails, or the value does not decode — the caller
// treats all three the same way.
func GetJSON(s Store, key string, v any) bool {
	raw, err := s.Get(key)
	if err != nil || raw == nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}

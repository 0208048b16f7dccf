package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ═══════════════════════════════════════════════════════════
// Shared JSONB helper types (GORM Scanner/Valuer)
// ═══════════════════════════════════════════════════════════

// StringList stores a list of strings in a jsonb column.
type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// JSONMap stores a loosely-typed document in a jsonb column. Page content
// documents (home/about/contact/footer) use this since every page carries a
// different shape and the admin form edits them wholesale.
type JSONMap map[string]any

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]any{})
	}
	return json.Marshal(m)
}

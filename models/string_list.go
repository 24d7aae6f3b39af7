// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON array in SQL
// backends (JSONB in PostgreSQL, TEXT in SQLite).
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("error marshaling string list: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner]. It accepts JSON arrays delivered either as
// string or []byte and treats NULL as an empty list.
func (s *StringList) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*s = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported type for string list: %T", src)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("error unmarshaling string list: %w", err)
	}
	if list == nil {
		list = []string{}
	}

	*s = list
	return nil
}

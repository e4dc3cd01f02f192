package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is an opaque record identifier. Backends emit it either as a JSON string
// or as a JSON number, both decode to the same value.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is empty
func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// IDFromInt is a convenience for numeric ids
func IDFromInt(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

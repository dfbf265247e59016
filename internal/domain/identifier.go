package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifier names a store or an item.
// The optimizer may emit identifiers as JSON strings or as JSON numbers
// (e.g. store 12); both decode to the same textual form.
type Identifier string

func (id Identifier) String() string { return string(id) }

func (id *Identifier) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode identifier: %w", err)
		}
		*id = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode identifier: expected string or number, got %s", b)
	}
	*id = Identifier(n.String())
	return nil
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keywords is the ordered keyword list of a product. The storage column
// keeps them comma-joined; everywhere else they are a plain slice.
type Keywords []string

// ParseKeywords splits a comma-joined keyword string, trimming blanks.
func ParseKeywords(s string) Keywords {
	parts := strings.Split(s, ",")
	out := make(Keywords, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (k Keywords) String() string {
	return strings.Join(k, ",")
}

// Scan implements sql.Scanner.
func (k *Keywords) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*k = Keywords{}
	case string:
		*k = ParseKeywords(v)
	case []byte:
		*k = ParseKeywords(string(v))
	default:
		return fmt.Errorf("keywords: unsupported column type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (k Keywords) Value() (driver.Value, error) {
	return k.String(), nil
}

func (k Keywords) MarshalJSON() ([]byte, error) {
	if k == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(k))
}

// UnmarshalJSON accepts either a JSON array of strings or a comma-joined string.
func (k *Keywords) UnmarshalJSON(data []byte) error {
	var list []any
	if err := json.Unmarshal(data, &list); err == nil {
		*k = keywordsFromList(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = ParseKeywords(s)
		return nil
	}

	// anything else carries no keywords
	*k = Keywords{}
	return nil
}

func (k *Keywords) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*k = ParseKeywords(value.Value)
	case yaml.SequenceNode:
		var list []any
		if err := value.Decode(&list); err != nil {
			return err
		}
		*k = keywordsFromList(list)
	default:
		*k = Keywords{}
	}
	return nil
}

func keywordsFromList(list []any) Keywords {
	out := make(Keywords, 0, len(list))
	for _, item := range list {
		if item == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(item))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

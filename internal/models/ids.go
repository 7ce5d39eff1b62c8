package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDList is a list of ObjectIDs decoded from a request body. Clients send
// either raw hex strings or objects carrying an "id" field; both decode to
// the same normalised, de-duplicated list.
type IDList []primitive.ObjectID

type idObject struct {
	ID string `json:"id"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *IDList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("id list must be an array: %w", err)
	}

	out := make(IDList, 0, len(raw))
	seen := make(map[primitive.ObjectID]struct{}, len(raw))
	for i, item := range raw {
		hex, err := decodeIDItem(item)
		if err != nil {
			return fmt.Errorf("id list item %d: %w", i, err)
		}
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return fmt.Errorf("id list item %d: invalid id %q", i, hex)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	*l = out
	return nil
}

func decodeIDItem(item json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s, nil
	}

	var obj idObject
	if err := json.Unmarshal(item, &obj); err == nil && obj.ID != "" {
		return obj.ID, nil
	}

	return "", fmt.Errorf("expected an id string or an object with an id field")
}

// IDs returns the list as a plain slice.
func (l IDList) IDs() []primitive.ObjectID {
	if l == nil {
		return nil
	}
	return []primitive.ObjectID(l)
}

package session

import (
	"encoding/json"
	"fmt"
	"time"
)

// Encode serializes the session values as a JSON object.
func (s *Session) Encode() ([]byte, error) {
	data, err := json.Marshal(s.values)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// Decode restores a session. Values stay raw until Load asks for them.
func Decode(key string, data []byte, expiresAt time.Time) (*Session, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	var raw map[string]json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	values := make(map[string]any, len(raw))
	for k, v := range raw {
		values[k] = v
	}

	return &Session{
		key:       key,
		values:    values,
		ExpiresAt: expiresAt,
	}, nil
}

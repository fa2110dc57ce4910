package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Encode serializes the list into its persisted JSON form.
func Encode(l List) (string, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses and validates a persisted task blob.
//
// Tasks stored without an id get a fresh one. Timestamps are normalized to UTC.
func Decode(raw string) (List, error) {
	data := []byte(raw)

	result := Validate(data)
	if !result.Valid {
		return nil, fmt.Errorf("invalid tasks: %w", errors.Join(result.Errors...))
	}

	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if l == nil {
		l = List{}
	}
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
		l[i].CreatedAt = l[i].CreatedAt.UTC()
		if l[i].EditedAt != nil {
			edited := l[i].EditedAt.UTC()
			l[i].EditedAt = &edited
		}
	}
	return l, nil
}

// Now returns the current time in the form tasks store it.
func Now() time.Time {
	return time.Now().UTC()
}

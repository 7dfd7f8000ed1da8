package homework

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response is a parsed API response body. Keys are kept raw so that the
// presence and shape of each field can be validated independently.
type Response map[string]json.RawMessage

// Validation errors for the homework list in an API response.
var (
	ErrHomeworksKeyMissing = errors.New("required key \"homeworks\" absent in API response")
	ErrHomeworksNotList    = errors.New("homework list is not a list")
)

// ExtractHomeworks validates and returns the homework list from a response
// body. Verdict codes are not validated here; Describe inspects the one
// record this system actually uses.
func ExtractHomeworks(body Response) ([]Homework, error) {
	raw, ok := body["homeworks"]
	if !ok {
		return nil, ErrHomeworksKeyMissing
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrHomeworksNotList
	}
	if items == nil { // JSON null is not a list
		return nil, ErrHomeworksNotList
	}
	homeworks := make([]Homework, 0, len(items))
	for i, item := range items {
		var hw Homework
		if err := json.Unmarshal(item, &hw); err != nil {
			if i == 0 {
				return nil, fmt.Errorf("malformed homework entry: %w", err)
			}
			// Only the most recent entry is ever consumed; a malformed
			// stale entry must not fail the whole cycle.
			continue
		}
		homeworks = append(homeworks, hw)
	}
	return homeworks, nil
}

// CurrentDate returns the server-reported current_date, or fallback when the
// field is absent or not an integer. The poll loop uses it to advance its
// cursor between cycles.
func (r Response) CurrentDate(fallback int64) int64 {
	raw, ok := r["current_date"]
	if !ok {
		return fallback
	}
	var ts int64
	if err := json.Unmarshal(raw, &ts); err != nil {
		return fallback
	}
	return ts
}

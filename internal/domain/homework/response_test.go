package homework

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseResponse(t *testing.T, raw string) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestExtractHomeworks(t *testing.T) {
	body := parseResponse(t, `{
		"homeworks": [
			{"id": 5, "homework_name": "hw1", "status": "approved"},
			{"id": 4, "homework_name": "hw0", "status": "rejected"}
		],
		"current_date": 1700000000
	}`)

	homeworks, err := ExtractHomeworks(body)
	require.NoError(t, err)
	require.Len(t, homeworks, 2)
	assert.Equal(t, Homework{ID: 5, Name: "hw1", Status: StatusApproved}, homeworks[0])
}

func TestExtractHomeworksEmptyList(t *testing.T) {
	homeworks, err := ExtractHomeworks(parseResponse(t, `{"homeworks": [], "current_date": 1}`))
	require.NoError(t, err)
	assert.Empty(t, homeworks)
}

func TestExtractHomeworksMissingKey(t *testing.T) {
	_, err := ExtractHomeworks(parseResponse(t, `{"current_date": 1}`))
	assert.ErrorIs(t, err, ErrHomeworksKeyMissing)
}

func TestExtractHomeworksNotAList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string", `{"homeworks": "not a list"}`},
		{"object", `{"homeworks": {"id": 5}}`},
		{"null", `{"homeworks": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractHomeworks(parseResponse(t, tt.raw))
			assert.ErrorIs(t, err, ErrHomeworksNotList)
		})
	}
}

func TestExtractHomeworksMalformedFirstEntry(t *testing.T) {
	_, err := ExtractHomeworks(parseResponse(t, `{"homeworks": [{"id": "five"}]}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrHomeworksNotList)
}

// Entries past the first are never consumed, so a malformed stale entry is
// skipped instead of failing the extraction.
func TestExtractHomeworksToleratesMalformedLaterEntries(t *testing.T) {
	homeworks, err := ExtractHomeworks(parseResponse(t, `{
		"homeworks": [
			{"id": 5, "homework_name": "hw1", "status": "approved"},
			{"id": "four"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, homeworks, 1)
	assert.Equal(t, Homework{ID: 5, Name: "hw1", Status: StatusApproved}, homeworks[0])
}

func TestCurrentDate(t *testing.T) {
	assert.Equal(t, int64(1700000000),
		parseResponse(t, `{"current_date": 1700000000}`).CurrentDate(42))
	assert.Equal(t, int64(42),
		parseResponse(t, `{"homeworks": []}`).CurrentDate(42))
	assert.Equal(t, int64(42),
		parseResponse(t, `{"current_date": "tomorrow"}`).CurrentDate(42))
}

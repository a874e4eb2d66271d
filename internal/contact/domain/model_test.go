package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReadFollowsStatus(t *testing.T) {
	m := New(Submission{Name: " Ana ", Email: "Ana@Example.com", Subject: "Hi", Message: "Hello"}, time.Now())
	assert.Equal(t, StatusNew, m.Status)
	assert.Equal(t, "ana@example.com", m.Email)
	assert.Equal(t, "Ana", m.Name)
	assert.False(t, m.IsRead())

	for _, st := range []string{StatusRead, StatusReplied, StatusArchived} {
		m.Status = st
		assert.True(t, m.IsRead(), st)
	}
}

func TestMarshalIncludesDerivedIsRead(t *testing.T) {
	m := New(Submission{Name: "Ana", Email: "a@b.co", Subject: "s", Message: "m"}, time.Now())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, false, doc["isRead"])
	assert.Equal(t, m.ID.Hex(), doc["_id"])
	assert.Equal(t, "new", doc["status"])

	m.Status = StatusReplied
	raw, err = json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, true, doc["isRead"])
}

package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventWriter_HandleMessage(t *testing.T) {
	var buf bytes.Buffer
	w := newEventWriter(&buf, true)

	body := []byte(`{"action":"match_confirmed","entity_type":"match","entity_id":"m-1",` +
		`"metadata":{"previous_status":"PROPOSED","new_status":"CONFIRMED","actor":"Ana"},` +
		`"occurred_at":"2026-03-01T10:00:00Z"}`)
	require.NoError(t, w.HandleMessage(body))
	require.NoError(t, w.HandleMessage([]byte(`{"action":"offer_created","entity_type":"offer","entity_id":"o-1","occurred_at":"2026-03-01T10:05:00Z"}`)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"2026-03-01T10:00:00Z", constants.ActionMatchConfirmed, "match", "m-1", "PROPOSED", "CONFIRMED", "Ana"}, records[1])
	assert.Equal(t, []string{"2026-03-01T10:05:00Z", constants.ActionOfferCreated, "offer", "o-1", "", "", ""}, records[2])
	assert.Equal(t, 2, w.Rows())
}

func TestEventWriter_DropsMalformed(t *testing.T) {
	var buf bytes.Buffer
	w := newEventWriter(&buf, false)

	assert.NoError(t, w.HandleMessage([]byte("not json")))
	assert.Zero(t, w.Rows())
	assert.Empty(t, buf.String())
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["export-sync"])
}

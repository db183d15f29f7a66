package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	data := map[string]any{
		"token":      "abc123",
		"permission": "download",
	}

	var buf bytes.Buffer
	err := PrintJSON(&buf, data)
	require.NoError(t, err)

	// Output must be indented, valid JSON
	assert.Contains(t, buf.String(), "  \"permission\": \"download\"")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc123", decoded["token"])
}

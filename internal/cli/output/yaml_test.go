package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrintYAML(t *testing.T) {
	data := struct {
		Name       string `yaml:"name"`
		Permission string `yaml:"permission"`
	}{
		Name:       "report.pdf",
		Permission: "view",
	}

	var buf bytes.Buffer
	err := PrintYAML(&buf, data)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "name: report.pdf")
	assert.Contains(t, buf.String(), "permission: view")

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "view", decoded["permission"])
}

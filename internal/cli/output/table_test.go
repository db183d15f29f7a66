package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableData(t *testing.T) {
	table := NewTableData("ID", "Name", "Size")

	assert.Equal(t, []string{"ID", "Name", "Size"}, table.Headers())
	assert.Empty(t, table.Rows())

	table.AddRow("f1", "report.pdf", "2048")
	table.AddRow("f2", "photo.jpg", "91002")

	rows := table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"f1", "report.pdf", "2048"}, rows[0])
	assert.Equal(t, []string{"f2", "photo.jpg", "91002"}, rows[1])
}

func TestPrintTable(t *testing.T) {
	table := NewTableData("Name", "Permission")
	table.AddRow("report.pdf", "download")
	table.AddRow("notes.txt", "view")

	var buf bytes.Buffer
	err := PrintTable(&buf, table)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "PERMISSION")
	assert.Contains(t, output, "report.pdf")
	assert.Contains(t, output, "download")
	assert.Contains(t, output, "notes.txt")
	assert.Contains(t, output, "view")
}

func TestSimpleTable(t *testing.T) {
	pairs := [][2]string{
		{"Server", "http://localhost:8080"},
		{"User", "alice"},
	}

	var buf bytes.Buffer
	err := SimpleTable(&buf, pairs)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Server")
	assert.Contains(t, output, "http://localhost:8080")
	assert.Contains(t, output, "User")
	assert.Contains(t, output, "alice")
}

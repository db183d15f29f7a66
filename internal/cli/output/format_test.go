package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "table", FormatTable.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, true)

	assert.Equal(t, FormatTable, printer.Format())
	assert.True(t, printer.ColorEnabled())

	printer.Println("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestPrinterMessages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	printer.Success("share created")
	printer.Warning("link expires soon")
	printer.Error("access denied")

	out := buf.String()
	assert.Contains(t, out, "share created")
	assert.Contains(t, out, "link expires soon")
	assert.Contains(t, out, "access denied")
	// With color disabled no escape codes should appear
	assert.NotContains(t, out, "\033[")
}

func TestPrinterColorCodes(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, true)

	printer.Success("done")
	assert.Contains(t, buf.String(), "\033[32m")
}

func TestPrintFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	// Plain structs don't implement TableRenderer, so Print emits JSON
	err := printer.Print(map[string]string{"name": "report.pdf"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"name": "report.pdf"`)
}

func TestDefaultPrinter(t *testing.T) {
	printer := DefaultPrinter()
	assert.NotNil(t, printer)
	assert.Equal(t, FormatTable, printer.Format())
	assert.True(t, printer.ColorEnabled())
}

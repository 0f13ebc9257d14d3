package link

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// FormatResult writes a build or create result in the requested format
func FormatResult(w io.Writer, result *Result, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(result)
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Field", "Value"})
		table.Append([]string{"Kind", string(result.Kind)})
		if result.LinkPath != "" {
			table.Append([]string{"Link", result.LinkPath})
		}
		if result.Target != "" {
			table.Append([]string{"Target", result.Target})
		}
		table.Append([]string{"Tag", result.Tag})
		table.Append([]string{"Size", strconv.Itoa(result.Size)})
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

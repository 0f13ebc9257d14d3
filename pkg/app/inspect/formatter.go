package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes a decoded reparse point in the requested format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatTags writes the tag registry in the requested format
func FormatTags(w io.Writer, entries []TagEntry, format string) error {
	switch format {
	case "json":
		return formatJSON(w, entries)
	case "yaml":
		return formatYAML(w, entries)
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetHeader([]string{"Value", "Name", "Microsoft", "Name Surrogate", "High Latency"})
		for _, e := range entries {
			table.Append([]string{
				e.Value,
				e.Name,
				yesNo(e.Microsoft),
				yesNo(e.NameSurrogate),
				yesNo(e.HighLatency),
			})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats a reparse point as a two column table
func formatTable(w io.Writer, response *Response) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColWidth(80)
	table.SetHeader([]string{"Field", "Value"})

	table.Append([]string{"Source", response.Source})
	table.Append([]string{"Size", strconv.Itoa(response.Size)})
	table.Append([]string{"Tag", response.Tag})
	table.Append([]string{"Tag Name", response.TagName})
	table.Append([]string{"Microsoft", yesNo(response.Microsoft)})
	table.Append([]string{"Name Surrogate", yesNo(response.NameSurrogate)})
	table.Append([]string{"Data Length", strconv.Itoa(int(response.DataLength))})
	table.Append([]string{"Reserved", fmt.Sprintf("0x%04X", response.Reserved)})
	if response.GUID != "" {
		table.Append([]string{"GUID", response.GUID})
	}
	table.Append([]string{"Kind", response.Kind})

	switch response.Kind {
	case "mount-point", "symbolic-link":
		table.Append([]string{"Substitute Name", response.SubstituteName})
		table.Append([]string{"Print Name", response.PrintName})
		if response.Kind == "symbolic-link" {
			table.Append([]string{"Flags", fmt.Sprintf("0x%08X", response.Flags)})
			table.Append([]string{"Relative", yesNo(response.Relative)})
		}
	default:
		table.Append([]string{"Data", response.Data})
	}

	table.Render()
	return nil
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package main

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return errors.Errorf("unknown output format %q, expected table, json or yaml", format)
	}
}

// table is the flat view of a result used by the table format.
type table struct {
	header []string
	rows   [][]string
}

// render writes data as json or yaml, or t as a table.
func render(w io.Writer, format string, data any, t table) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(data), "encode json")
	case formatYAML:
		// go through json so yaml keys match the json ones
		raw, err := json.Marshal(data)
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		var doc any
		if err = json.Unmarshal(raw, &doc); err != nil {
			return errors.Wrap(err, "decode json")
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "flush yaml")
	default:
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(t.header)
		tw.SetAutoWrapText(false)
		tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		tw.SetBorder(false)
		tw.SetCenterSeparator("")
		tw.SetColumnSeparator("")
		tw.SetRowSeparator("")
		tw.SetHeaderLine(false)
		tw.AppendBulk(t.rows)
		tw.Render()
		return nil
	}
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func num(n *int32) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(int(*n))
}

func boolean(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func stamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return aws.ToTime(t).UTC().Format(time.RFC3339)
}

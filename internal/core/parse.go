package core

// parse.go turns a raw CSV payload into a Table.
//
// The splitter is deliberately lenient: malformed quoting never produces an
// error. An unterminated quote swallows the rest of its line as one field.

import (
	"regexp"
	"strconv"
	"strings"
)

// lineBreak matches both CRLF and bare LF line endings.
var lineBreak = regexp.MustCompile(`\r\n|\n`)

// SplitLine splits one CSV line into fields.
// Commas inside double-quoted spans are literal, and a doubled quote inside
// a quoted field stands for one quote character.
func SplitLine(line string) []string {
	var fields []string
	start := 0
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, unquoteField(line[start:i]))
				start = i + 1
			}
		}
	}

	return append(fields, unquoteField(line[start:]))
}

// unquoteField strips one pair of surrounding quotes and collapses "" to ".
// A field consisting of a single quote character unquotes to "".
func unquoteField(field string) string {
	if field == `"` {
		return ""
	}
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		return strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
	}
	return field
}

// ParseTable parses a full CSV payload.
// Line 0 holds the headers; blank lines and rows whose cells are all empty
// are dropped. Row IDs are derived from the line position.
func ParseTable(payload string) *Table {
	lines := lineBreak.Split(payload, -1)
	headers := SplitLine(lines[0])

	table := &Table{
		Headers:          headers,
		Rows:             []Row{},
		PriceColumnIndex: FindColumnIndex(headers, PriceKeywords),
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, ok := buildRow(headers, SplitLine(line))
		if !ok {
			continue
		}
		row.ID = rowID(i)
		row.OriginalIndex = i
		table.Rows = append(table.Rows, row)
	}

	return table
}

// buildRow zips values against headers. Missing cells become "" and extra
// cells are ignored. Returns false if every cell is empty.
func buildRow(headers, values []string) (Row, bool) {
	data := make(map[string]string, len(headers))
	for i, h := range headers {
		var v string
		if i < len(values) {
			v = strings.TrimSpace(values[i])
		}
		data[h] = v
	}

	for _, v := range data {
		if v != "" {
			return Row{Data: data}, true
		}
	}
	return Row{}, false
}

func rowID(line int) string {
	return "row-" + strconv.Itoa(line)
}

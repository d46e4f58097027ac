package csvtab

import "strings"

// SplitLine splits one line of comma-delimited text into trimmed fields.
// A comma inside double quotes does not split; quote characters are
// stripped from the field value. Unbalanced quotes never fail: the quote
// state simply carries to the end of the line and whatever fields
// accumulated are returned. A blank line yields no fields at all, so the
// caller can skip it instead of treating it as a record.
func SplitLine(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var (
		fields  []string
		field   strings.Builder
		inQuote bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

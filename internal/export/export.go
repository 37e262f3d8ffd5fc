// Package export serializes stored weather queries into downloadable
// documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatXML      = "xml"
	FormatMD       = "md"
	FormatMarkdown = "markdown"
)

// Fields is the column order shared by every format.
var Fields = []string{
	"id", "location", "latitude", "longitude",
	"start_date", "end_date", "weather_summary", "created_at",
}

// Row is one exported weather query. Dates are ISO-8601 strings.
type Row struct {
	ID             uint   `json:"id"`
	Location       string `json:"location"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	WeatherSummary string `json:"weather_summary"`
	CreatedAt      string `json:"created_at"`
}

func (r Row) values() []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Location,
		r.Latitude,
		r.Longitude,
		r.StartDate,
		r.EndDate,
		r.WeatherSummary,
		r.CreatedAt,
	}
}

type Document struct {
	ContentType string
	Body        []byte
}

// Render serializes rows in the named format. Unknown formats fall back to
// JSON.
func Render(format string, rows []Row) (Document, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return renderCSV(rows)
	case FormatXML:
		return renderXML(rows), nil
	case FormatMD, FormatMarkdown:
		return renderMarkdown(rows), nil
	default:
		return renderJSON(rows)
	}
}

func renderJSON(rows []Row) (Document, error) {
	if rows == nil {
		rows = []Row{}
	}

	body, err := json.Marshal(struct {
		Data []Row `json:"data"`
	}{Data: rows})
	if err != nil {
		return Document{}, err
	}

	return Document{ContentType: "application/json", Body: body}, nil
}

func renderCSV(rows []Row) (Document, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Fields); err != nil {
		return Document{}, err
	}
	for _, row := range rows {
		if err := w.Write(row.values()); err != nil {
			return Document{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Document{}, err
	}

	return Document{ContentType: "text/csv; charset=utf-8", Body: buf.Bytes()}, nil
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func renderXML(rows []Row) Document {
	var b strings.Builder

	b.WriteString("<records>\n")
	for _, row := range rows {
		b.WriteString("  <record>\n")
		for i, value := range row.values() {
			b.WriteString("    <" + Fields[i] + ">")
			b.WriteString(xmlEscaper.Replace(value))
			b.WriteString("</" + Fields[i] + ">\n")
		}
		b.WriteString("  </record>\n")
	}
	b.WriteString("</records>\n")

	return Document{ContentType: "application/xml; charset=utf-8", Body: []byte(b.String())}
}

var markdownCellEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func renderMarkdown(rows []Row) Document {
	lines := []string{"# Export", ""}

	if len(rows) == 0 {
		lines = append(lines, "_No rows_")
	} else {
		separators := make([]string, len(Fields))
		for i := range separators {
			separators[i] = " --- "
		}

		lines = append(lines,
			"| "+strings.Join(Fields, " | ")+" |",
			"|"+strings.Join(separators, "|")+"|",
		)

		for _, row := range rows {
			cells := row.values()
			for i, cell := range cells {
				cells[i] = markdownCellEscaper.Replace(cell)
			}
			lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		}
	}

	return Document{ContentType: "text/markdown; charset=utf-8", Body: []byte(strings.Join(lines, "\n") + "\n")}
}

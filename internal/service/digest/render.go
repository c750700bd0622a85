package digest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

//go:embed templates/digest.html
var templatesFS embed.FS

var digestTmpl = template.Must(template.ParseFS(templatesFS, "templates/digest.html"))

// UncategorizedSection heads the topics that have no category.
const UncategorizedSection = "RECURRENTES"

// DiscoverURL is the shared Discover Snoop spreadsheet linked from the intro.
const DiscoverURL = "https://docs.google.com/spreadsheets/d/1X_SK5OgYyxPlAIfos_YRqvHOXQERi9qrf2iTp8lm1ZM/edit?gid=1228257343#gid=1228257343"

// DefaultMessage is the intro paragraph placed above the topics table.
const DefaultMessage = `Buenos días!! 😊<br><br>` +
	`En el siguiente mail os dejamos:<br>` +
	`1. Las tendencias del día<br>` +
	`2. Enlace actualizado al documento de Discover Snoop: ` +
	`<a href="` + DiscoverURL + `" style="color:#1F5C99">` + DiscoverURL + `</a>`

const (
	defaultSectionColor = "#003C71"
	tableWidth          = 640
)

var sectionColors = map[string]string{
	"COMUNES":            "#E06000",
	"NACIONAL":           "#C00000",
	"MADRID":             "#003C71",
	"ANDALUCIA":          "#003C71",
	"BALEARES":           "#003C71",
	"CANARIAS":           "#003C71",
	"CV/MURCIA":          "#003C71",
	"ASTURIAS/GALICIA":   "#003C71",
	"EXTREMADURA/ZAMORA": "#003C71",
	"CATALUNA/ARAGON":    "#003C71",
	"INTERNACIONAL":      "#1F5C99",
	"ECONOMIA":           "#7030A0",
	"DEPORTES":           "#375623",
	"REVISTAS":           "#1F4E79",
	UncategorizedSection: "#555555",
}

// Section is one row of the digest table.
type Section struct {
	Name        string
	Color       template.CSS
	ColumnWidth int
	Columns     [][]string
}

type page struct {
	Subject  string
	Message  template.HTML
	Sections []Section
}

// Render builds the digest HTML. message is trusted markup written by the
// editor; titles and the subject are escaped.
func Render(subject, message string, topics []domain.DailyTopic) (string, error) {
	var buf bytes.Buffer
	err := digestTmpl.Execute(&buf, page{
		Subject:  subject,
		Message:  template.HTML(message), //nolint:gosec // editor-authored rich text
		Sections: BuildSections(topics),
	})
	if err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

// BuildSections groups topics by category in display order. Uncategorised
// topics come first under RECURRENTES. Topics keep their input order inside
// a section.
func BuildSections(topics []domain.DailyTopic) []Section {
	type group struct {
		name   string
		order  int
		titles []string
	}

	var (
		groups        []*group
		byName        = make(map[string]*group)
		uncategorized []string
	)
	for _, t := range topics {
		if t.Category == nil {
			uncategorized = append(uncategorized, t.Title)
			continue
		}
		g, ok := byName[t.Category.Name]
		if !ok {
			g = &group{name: t.Category.Name, order: t.Category.DisplayOrder}
			byName[g.name] = g
			groups = append(groups, g)
		}
		g.titles = append(g.titles, t.Title)
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].order < groups[j].order })

	sections := make([]Section, 0, len(groups)+1)
	if len(uncategorized) > 0 {
		sections = append(sections, newSection(UncategorizedSection, uncategorized))
	}
	for _, g := range groups {
		sections = append(sections, newSection(g.name, g.titles))
	}
	return sections
}

func newSection(name string, titles []string) Section {
	color, ok := sectionColors[name]
	if !ok {
		color = defaultSectionColor
	}
	cols := splitColumns(titles)
	return Section{
		Name:        name,
		Color:       template.CSS(color), //nolint:gosec // fixed palette
		ColumnWidth: tableWidth / len(cols),
		Columns:     cols,
	}
}

// splitColumns lays titles out in 1, 2 or 3 columns for up to 3, up to 6 or
// more titles, filling each column before the next.
func splitColumns(titles []string) [][]string {
	n := 3
	switch {
	case len(titles) <= 3:
		n = 1
	case len(titles) <= 6:
		n = 2
	}
	size := (len(titles) + n - 1) / n

	cols := make([][]string, 0, n)
	for i := 0; i < len(titles); i += size {
		end := min(i+size, len(titles))
		cols = append(cols, titles[i:end])
	}
	return cols
}

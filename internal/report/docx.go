package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
)

// Renderer writes report data as Word documents into a fixed output
// directory. Filenames are deterministic from project name, framework,
// stage and date.
type Renderer struct {
	outputDir string
	now       func() time.Time
}

// NewRenderer creates a renderer targeting outputDir
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir, now: time.Now}
}

// Render produces a .docx for the given report data. Incomplete data (no
// risk score and level) is refused: a document with placeholder values is
// worse than no document.
func (r *Renderer) Render(data Data, projectName, description string) (ExportResult, error) {
	score, level, complete := data.RiskSummary()
	if !complete {
		return ExportResult{}, fmt.Errorf("refusing to render: report data carries no risk score and level")
	}
	if projectName == "" {
		projectName = data.ProjectName
	}

	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(fmt.Sprintf("Regulatory Assessment Report: %s", projectName)).Size("36").Bold()

	sub := doc.AddParagraph()
	sub.AddText(fmt.Sprintf("Framework: %s", frameworkLabel(data))).Size("24")

	meta := doc.AddTable(metaRowCount(data), 2, 0, nil)
	row := 0
	setCell := func(label, value string) {
		meta.TableRows[row].TableCells[0].AddParagraph().AddText(label).Bold()
		meta.TableRows[row].TableCells[1].AddParagraph().AddText(value)
		row++
	}
	setCell("Project", projectName)
	setCell("Generated", r.now().Format("2006-01-02"))
	setCell("Risk score", fmt.Sprintf("%.1f", score))
	setCell("Risk level", level)
	if data.Stage != "" {
		setCell("Lifecycle stage", string(data.Stage))
	}

	if description != "" {
		h := doc.AddParagraph()
		h.AddText("Project Description").Size("28").Bold()
		doc.AddParagraph().AddText(description)
	}

	for _, section := range data.Sections {
		h := doc.AddParagraph()
		h.AddText(section.Title).Size("28").Bold()
		doc.AddParagraph().AddText(section.Body)
	}

	r.addFactorTables(doc, data)

	path := filepath.Join(r.outputDir, r.fileName(projectName, data))
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return ExportResult{}, fmt.Errorf("write report: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("stat report: %w", err)
	}

	return ExportResult{FilePath: path, ByteSize: info.Size()}, nil
}

// addFactorTables appends one detected-factor checklist per assessment
func (r *Renderer) addFactorTables(doc *docx.Docx, data Data) {
	writeFactors := func(heading string, factors map[string]bool) {
		if len(factors) == 0 {
			return
		}
		h := doc.AddParagraph()
		h.AddText(heading).Size("28").Bold()

		names := sortedKeys(factors)
		table := doc.AddTable(len(names)+1, 2, 0, nil)
		table.TableRows[0].TableCells[0].AddParagraph().AddText("Risk factor").Bold()
		table.TableRows[0].TableCells[1].AddParagraph().AddText("Detected").Bold()
		for i, name := range names {
			mark := "No"
			if factors[name] {
				mark = "Yes"
			}
			table.TableRows[i+1].TableCells[0].AddParagraph().AddText(name)
			table.TableRows[i+1].TableCells[1].AddParagraph().AddText(mark)
		}
	}

	if data.AIA != nil {
		writeFactors("AIA Risk Factors", data.AIA.DetectedFactors)
	}
	if data.OSFI != nil {
		writeFactors("E-23 Risk Factors", data.OSFI.DetectedFactors)
	}
}

// fileName builds the deterministic output name:
// <project-slug>_<framework>[_<stage>]_<YYYY-MM-DD>.docx
func (r *Renderer) fileName(projectName string, data Data) string {
	parts := []string{slug(projectName), slug(data.Framework)}
	if data.Stage != "" {
		parts = append(parts, string(data.Stage))
	}
	parts = append(parts, r.now().Format("2006-01-02"))
	return strings.Join(parts, "_") + ".docx"
}

func frameworkLabel(data Data) string {
	switch {
	case data.AIA != nil && data.OSFI != nil:
		return "AIA + OSFI E-23 (combined)"
	case data.OSFI != nil:
		return "OSFI Guideline E-23"
	default:
		return "Algorithmic Impact Assessment"
	}
}

func metaRowCount(data Data) int {
	if data.Stage != "" {
		return 5
	}
	return 4
}

// slug lowercases and collapses anything non-alphanumeric to single hyphens
func slug(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func sortedKeys(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

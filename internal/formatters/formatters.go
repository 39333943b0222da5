package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ResumeAnalysis", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeAnalysis", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSScore", &ATSTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSScore", &ATSMarkdownFormatter{})
	registry.RegisterFormatter("text", "KeywordMatchResult", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "KeywordMatchResult", &MatchMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ResumeAnalysis:
		return "ResumeAnalysis"
	case types.ATSScore:
		return "ATSScore"
	case types.KeywordMatchResult:
		return "KeywordMatchResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeSectionBars(output *strings.Builder, sections types.ATSSections, bullet string) {
	output.WriteString(fmt.Sprintf("%sKeywords: %d/100\n", bullet, sections.Keywords))
	output.WriteString(fmt.Sprintf("%sFormatting: %d/100\n", bullet, sections.Formatting))
	output.WriteString(fmt.Sprintf("%sContact: %d/100\n", bullet, sections.Contact))
	output.WriteString(fmt.Sprintf("%sLength: %d/100\n", bullet, sections.Length))
	output.WriteString(fmt.Sprintf("%sSections: %d/100\n", bullet, sections.Sections))
}

// ATSTextFormatter handles text formatting for ATS checklist results
type ATSTextFormatter struct{}

func (atf *ATSTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.Overall))

	output.WriteString("Section breakdown:\n")
	writeSectionBars(&output, result.Sections, "  ")
	output.WriteString("\n")

	output.WriteString("Feedback:\n")
	for _, line := range result.Feedback {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}

	return output.String(), nil
}

func (atf *ATSTextFormatter) SupportedType() string {
	return "ATSScore"
}

// ATSMarkdownFormatter handles markdown formatting for ATS checklist results
type ATSMarkdownFormatter struct{}

func (amf *ATSMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Overall))

	output.WriteString("## Section Breakdown\n\n")
	writeSectionBars(&output, result.Sections, "- ")
	output.WriteString("\n")

	output.WriteString("## Feedback\n\n")
	for _, line := range result.Feedback {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}

	return output.String(), nil
}

func (amf *ATSMarkdownFormatter) SupportedType() string {
	return "ATSScore"
}

// MatchTextFormatter handles text formatting for job match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.KeywordMatchResult)
	if !ok {
		return "", fmt.Errorf("expected KeywordMatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB MATCH ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.Score))

	if len(result.Matches) > 0 {
		output.WriteString("Keywords:\n")
		for _, match := range result.Matches {
			status := "missing"
			if match.Found {
				status = fmt.Sprintf("found %dx", match.Count)
			}
			output.WriteString(fmt.Sprintf("- %s (%s)\n", match.Keyword, status))
		}
		output.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		output.WriteString("Missing keywords:\n")
		for _, keyword := range result.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Extra) > 0 {
		output.WriteString("Extra resume keywords:\n")
		for _, keyword := range result.Extra {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "KeywordMatchResult"
}

// MatchMarkdownFormatter handles markdown formatting for job match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.KeywordMatchResult)
	if !ok {
		return "", fmt.Errorf("expected KeywordMatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Match\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Score))

	if len(result.Matches) > 0 {
		output.WriteString("## Keywords\n\n")
		output.WriteString("| Keyword | Found | Count |\n")
		output.WriteString("|---------|-------|-------|\n")
		for _, match := range result.Matches {
			output.WriteString(fmt.Sprintf("| %s | %t | %d |\n", match.Keyword, match.Found, match.Count))
		}
		output.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Extra) > 0 {
		output.WriteString("## Extra Resume Keywords\n\n")
		for _, keyword := range result.Extra {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "KeywordMatchResult"
}

// AnalysisTextFormatter handles text formatting for full analysis reports
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ResumeAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.Overall))

	output.WriteString("=== ATS COMPATIBILITY ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.ATS.Overall))
	writeSectionBars(&output, result.ATS.Sections, "  ")
	output.WriteString("\nFeedback:\n")
	for _, line := range result.ATS.Feedback {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}
	output.WriteString("\n")

	if result.Match != nil {
		output.WriteString("=== JOB MATCH ===\n")
		output.WriteString(fmt.Sprintf("Score: %d/100\n", result.Match.Score))
		if len(result.Match.Missing) > 0 {
			output.WriteString("Missing keywords:\n")
			for _, keyword := range result.Match.Missing {
				output.WriteString(fmt.Sprintf("- %s\n", keyword))
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("=== CONTENT STRENGTH ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.ContentStrength))

	if len(result.OverusedWords) > 0 {
		output.WriteString("=== OVERUSED PHRASES ===\n")
		for _, word := range result.OverusedWords {
			output.WriteString(fmt.Sprintf("- %q used %d times, try: %s\n",
				word.Word, word.Count, strings.Join(word.Suggestions, ", ")))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== QUANTIFIED METRICS ===\n")
	output.WriteString(fmt.Sprintf("Bullets with metrics: %d\n", result.Metrics.MetricCount))
	output.WriteString(fmt.Sprintf("Bullets without metrics: %d\n", result.Metrics.BulletsWithoutMetrics))
	if len(result.Metrics.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, suggestion := range result.Metrics.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "ResumeAnalysis"
}

// AnalysisMarkdownFormatter handles markdown formatting for full analysis reports
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ResumeAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.Overall))

	output.WriteString("## ATS Compatibility\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.ATS.Overall))
	writeSectionBars(&output, result.ATS.Sections, "- ")
	output.WriteString("\n### Feedback\n\n")
	for _, line := range result.ATS.Feedback {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}
	output.WriteString("\n")

	if result.Match != nil {
		output.WriteString("## Job Match\n\n")
		output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Match.Score))
		if len(result.Match.Missing) > 0 {
			output.WriteString("### Missing Keywords\n\n")
			for _, keyword := range result.Match.Missing {
				output.WriteString(fmt.Sprintf("- %s\n", keyword))
			}
			output.WriteString("\n")
		}
	}

	output.WriteString("## Content Strength\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.ContentStrength))

	if len(result.OverusedWords) > 0 {
		output.WriteString("## Overused Phrases\n\n")
		for _, word := range result.OverusedWords {
			output.WriteString(fmt.Sprintf("- **%s** used %d times, try: %s\n",
				word.Word, word.Count, strings.Join(word.Suggestions, ", ")))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Quantified Metrics\n\n")
	output.WriteString(fmt.Sprintf("- Bullets with metrics: %d\n", result.Metrics.MetricCount))
	output.WriteString(fmt.Sprintf("- Bullets without metrics: %d\n", result.Metrics.BulletsWithoutMetrics))
	if len(result.Metrics.Suggestions) > 0 {
		output.WriteString("\n### Suggestions\n\n")
		for _, suggestion := range result.Metrics.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "ResumeAnalysis"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()

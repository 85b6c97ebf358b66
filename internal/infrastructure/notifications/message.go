package notifications

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"dubiqo_quotes/internal/domain/entities"
	"dubiqo_quotes/internal/domain/pricing"

	"golang.org/x/text/unicode/norm"
)

var bodyTemplate = template.Must(template.New("quote_request").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`New quote request

Name:      {{.Name}}
Email:     {{.Email}}
{{- if .Phone}}
Phone:     {{.Phone}}
{{- end}}

Project:   {{.ProjectType}}
Pages:     {{.Pages}}
Urgency:   {{.Urgency}}
Features:  {{if .Features}}{{join .Features ", "}}{{else}}none{{end}}
Estimate:  {{.EstimatedRangeText}}
{{- if .AdditionalNotes}}

Details:
{{.AdditionalNotes}}
{{- end}}
`))

type bodyData struct {
	entities.QuoteSubmission
	Pages    string
	Features []string
}

const maxSubjectLen = 100

// subject is a single line of at most 100 bytes, cut on a rune boundary.
func subject(s entities.QuoteSubmission) string {
	out := fmt.Sprintf("Quote request: %s from %s", s.ProjectType, s.Name)
	return truncateUTF8(strings.Join(strings.Fields(out), " "), maxSubjectLen)
}

// asciiSubject is subject reduced to printable ASCII, as SNS requires.
// Accents are folded first, so "José" becomes "Jose".
func asciiSubject(s entities.QuoteSubmission) string {
	folded := norm.NFD.String(subject(s))
	var b strings.Builder
	for _, r := range folded {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	return truncateUTF8(strings.Join(strings.Fields(b.String()), " "), maxSubjectLen)
}

func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// renderBody renders the plain-text email body for a submission.
func renderBody(s entities.QuoteSubmission) (string, error) {
	data := bodyData{QuoteSubmission: s, Pages: fmt.Sprintf("%d", s.PageCount)}
	if s.PageCount >= 10 {
		data.Pages = "10+"
	}
	for _, id := range s.Features {
		data.Features = append(data.Features, featureLabel(id))
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render quote request body: %w", err)
	}
	return buf.String(), nil
}

func featureLabel(id entities.FeatureID) string {
	for _, f := range pricing.FeatureCatalog() {
		if f.ID == id {
			return f.Label
		}
	}
	return string(id)
}

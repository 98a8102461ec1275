package gemini

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/chartadvisor/chart-advisor/internal/domain"
	"github.com/chartadvisor/chart-advisor/internal/generation"
	"github.com/chartadvisor/chart-advisor/internal/guide"
)

//go:embed templates/recommend.tmpl
var defaultPromptTemplate string

// loadPromptTemplate parses the template at path, or the embedded default
// when path is empty.
func loadPromptTemplate(path string) (*template.Template, error) {
	content := defaultPromptTemplate
	name := "recommend"

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template: %v",
				generation.ErrInvalidConfig, err)
		}
		content = string(raw)
		name = "custom"
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// createPrompt renders the prompt for one request. The user's fields are
// inserted verbatim.
func (g *Generator) createPrompt(ctx context.Context, req domain.RecommendationRequest) (string, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %v", generation.ErrInvalidRequest, missing)
	}

	data := promptData{
		Guide:           guide.Text(),
		DataDescription: req.DataDescription,
		Objective:       req.Objective,
	}

	var promptBuffer bytes.Buffer
	if err := g.promptTemplate.Execute(&promptBuffer, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	prompt := promptBuffer.String()
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "Prompt generated successfully",
		"template_name", g.promptTemplate.Name(),
		"prompt_length", len(prompt))

	return prompt, nil
}

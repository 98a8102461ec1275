package gemini

import (
	"google.golang.org/genai"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

// promptData represents the data passed to the prompt template
type promptData struct {
	Guide           string
	DataDescription string
	Objective       string
}

// Field descriptions are part of the model contract and are written in the
// guide's language so the output matches it.
const (
	chartTypeDescription = "O nome do tipo de gráfico recomendado em inglês."
	reasoningDescription = "Uma explicação clara e concisa em Português do Brasil, com no máximo 3 frases, " +
		"sobre por que este gráfico é a melhor escolha para os dados e o objetivo do usuário."
)

// responseMIMEType forces the model to emit a JSON document.
const responseMIMEType = "application/json"

// recommendationSchema declares the exact shape of domain.Recommendation for
// constrained decoding. A fresh value is built per call because the SDK may
// mutate the config it is given.
func recommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"chartType": {
				Type:        genai.TypeString,
				Description: chartTypeDescription,
				Enum:        domain.ChartTypeNames(),
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: reasoningDescription,
			},
		},
		Required:         []string{"chartType", "reasoning"},
		PropertyOrdering: []string{"chartType", "reasoning"},
	}
}

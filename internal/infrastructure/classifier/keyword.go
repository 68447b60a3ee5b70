package classifier

import (
	"context"
	"encoding/json"
	"strings"

	"morais_erp/internal/domain/entities"
)

type keywordRule struct {
	keywords []string
	result   entities.MaterialClassification
}

// keywordRules answers classification prompts offline. First match wins.
var keywordRules = []keywordRule{
	{[]string{"cimento", "argamassa", "cal "}, entities.MaterialClassification{Category: "Cimento e Argamassa", Unit: "saco"}},
	{[]string{"areia", "brita", "pedra", "cascalho"}, entities.MaterialClassification{Category: "Agregados", Unit: "m3"}},
	{[]string{"tijolo", "bloco", "telha"}, entities.MaterialClassification{Category: "Alvenaria", Unit: "un"}},
	{[]string{"vergalhão", "vergalhao", "aço", "arame", "ferro"}, entities.MaterialClassification{Category: "Aço e Ferragens", Unit: "kg"}},
	{[]string{"tinta", "massa corrida", "selador"}, entities.MaterialClassification{Category: "Pintura", Unit: "l"}},
	{[]string{"piso", "porcelanato", "azulejo", "cerâmica", "ceramica"}, entities.MaterialClassification{Category: "Revestimentos", Unit: "m2"}},
	{[]string{"cabo", "fio", "disjuntor", "tomada"}, entities.MaterialClassification{Category: "Elétrica", Unit: "un"}},
	{[]string{"tubo", "cano", "registro", "conexão", "conexao"}, entities.MaterialClassification{Category: "Hidráulica", Unit: "un"}},
	{[]string{"madeira", "tábua", "tabua", "compensado", "viga"}, entities.MaterialClassification{Category: "Madeira", Unit: "m"}},
}

// keywordGenerator stands in for the model when AI_CLASSIFIER_MOCK is set.
type keywordGenerator struct{}

func (keywordGenerator) Generate(_ context.Context, prompt string) (string, error) {
	if !strings.HasPrefix(prompt, "Classifique") {
		b, err := json.Marshal(DefaultInsights)
		return string(b), err
	}
	b, err := json.Marshal(classifyByKeyword(prompt))
	return string(b), err
}

func classifyByKeyword(text string) entities.MaterialClassification {
	// Only the quoted material name is matched, not the prompt instructions.
	if start := strings.IndexByte(text, '"'); start >= 0 {
		if end := strings.IndexByte(text[start+1:], '"'); end >= 0 {
			text = text[start+1 : start+1+end]
		}
	}
	lower := strings.ToLower(text) + " "
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.result
			}
		}
	}
	return entities.FallbackClassification
}

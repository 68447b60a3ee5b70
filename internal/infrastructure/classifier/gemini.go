package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"morais_erp/internal/domain/entities"
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

// DefaultInsights is answered whenever the model gives nothing usable.
var DefaultInsights = []string{
	"Mantenha o controle rigoroso das cotações.",
	"Considere compras em volume.",
	"Verifique prazos de entrega.",
}

// generator sends one prompt and returns the model text.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini classifies materials and writes purchasing tips through the Gemini
// generateContent API. Every failure is logged and answered with a fallback.
type Gemini struct {
	gen generator
	log *logrus.Logger
}

var (
	_ interfaces.IMaterialClassifier = (*Gemini)(nil)
	_ interfaces.IOrderAdvisor       = (*Gemini)(nil)
)

// NewGeminiFromEnv reads GEMINI_API_KEY, GEMINI_MODEL and GEMINI_ENDPOINT. With
// AI_CLASSIFIER_MOCK enabled no remote call is ever made and a keyword table
// answers instead.
func NewGeminiFromEnv(ctx context.Context) (*Gemini, error) {
	log := logging.GetLogger()
	if envFlag("AI_CLASSIFIER_MOCK") {
		log.Info("[classifier] mock mode enabled")
		return &Gemini{gen: keywordGenerator{}, log: log}, nil
	}

	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = defaultGeminiModel
	}
	endpoint := strings.TrimSpace(os.Getenv("GEMINI_ENDPOINT"))
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}
	gen, err := newGeminiGenerator(ctx, key, model, endpoint)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"model": model, "endpoint": endpoint}).Info("[classifier] Gemini client initialized")
	return &Gemini{gen: gen, log: log}, nil
}

func (g *Gemini) Classify(ctx context.Context, materialName string) entities.MaterialClassification {
	fields := logrus.Fields{"material": materialName}
	prompt := fmt.Sprintf(
		`Classifique o seguinte material de construção civil e sugira uma unidade de medida comum (kg, m2, un, m3, etc): %q. `+
			`Responda somente com JSON no formato {"category": "...", "unit": "..."}.`, materialName)

	text, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		logging.LogError(g.log, "classifier", "Classify", fields, err)
		return entities.FallbackClassification
	}

	var out entities.MaterialClassification
	if err := json.Unmarshal([]byte(extractJSON(text, '{', '}')), &out); err != nil {
		logging.LogError(g.log, "classifier", "Classify", fields, err)
		return entities.FallbackClassification
	}
	out.Category = strings.TrimSpace(out.Category)
	out.Unit = strings.TrimSpace(out.Unit)
	if out.Category == "" || out.Unit == "" {
		return entities.FallbackClassification
	}
	return out
}

type orderDigest struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	TotalCost float64  `json:"total_cost"`
	Quotes    int      `json:"quotes"`
	Items     []string `json:"items"`
}

// Insights asks for three short saving tips over a digest of the orders.
func (g *Gemini) Insights(ctx context.Context, orders []entities.MaterialOrder, projectBudget float64) []string {
	digest := make([]orderDigest, 0, len(orders))
	for _, o := range orders {
		d := orderDigest{ID: o.ID, Status: string(o.Status), TotalCost: o.TotalCost(), Quotes: len(o.Quotes)}
		for _, it := range o.Items {
			d.Items = append(d.Items, fmt.Sprintf("%s (%g %s)", it.Name, it.Quantity, it.Unit))
		}
		digest = append(digest, d)
	}
	body, err := json.Marshal(digest)
	if err != nil {
		return fallbackInsights()
	}
	prompt := fmt.Sprintf(
		`Analise estes pedidos de obra: %s. Orçamento total: R$ %.2f. Dê 3 dicas curtas de economia ou alertas de preço. `+
			`Responda somente com um array JSON de strings.`, body, projectBudget)

	text, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		logging.LogError(g.log, "classifier", "Insights", logrus.Fields{"orders": len(orders)}, err)
		return fallbackInsights()
	}
	var tips []string
	if err := json.Unmarshal([]byte(extractJSON(text, '[', ']')), &tips); err != nil {
		logging.LogError(g.log, "classifier", "Insights", logrus.Fields{"orders": len(orders)}, err)
		return fallbackInsights()
	}
	out := tips[:0]
	for _, tip := range tips {
		if tip = strings.TrimSpace(tip); tip != "" {
			out = append(out, tip)
		}
	}
	if len(out) == 0 {
		return fallbackInsights()
	}
	return out
}

func fallbackInsights() []string {
	return append([]string(nil), DefaultInsights...)
}

// extractJSON trims markdown fences and surrounding prose from a model answer.
func extractJSON(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

// geminiGenerator calls models/{model}:generateContent over REST. The API key
// is attached by the google transport.
type geminiGenerator struct {
	client *http.Client
	url    string
}

func newGeminiGenerator(ctx context.Context, apiKey, model, endpoint string) (*geminiGenerator, error) {
	client, _, err := htransport.NewClient(ctx, option.WithAPIKey(apiKey), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{
		client: client,
		url:    strings.TrimRight(endpoint, "/") + "/models/" + url.PathEscape(model) + ":generateContent",
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if err := googleapi.CheckResponse(res); err != nil {
		return "", err
	}

	var out generateContentResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, c := range out.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		break
	}
	if sb.Len() == 0 {
		return "", errors.New("empty model response")
	}
	return sb.String(), nil
}

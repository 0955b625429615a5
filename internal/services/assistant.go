package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zoo-visitor-platform/internal/models"
)

// assistantContext is the fixed knowledge the visitor assistant answers
// from. Questions outside of it get a polite refusal from the model.
const assistantContext = `Du bist der Besucher-Assistent des Zoos. ` +
	`Beantworte Fragen zu unseren Tieren kurz und freundlich auf Deutsch. ` +
	`Unsere Tiere: Elefanten (afrikanische Savanne, taeglich Fuetterung um 14 Uhr), ` +
	`Loewen (Loewenanlage, Raubkatzen-Fuetterung Dienstag und Freitag), ` +
	`Pinguine (Pinguinhaus, Parade im Winter um 13:30 Uhr), ` +
	`Giraffen (Savannenhaus), Erdmaennchen, Flamingos und Schneeleoparden. ` +
	`Tickets: Erwachsene 32 CHF, Jugendliche 26 CHF, Kinder 17 CHF. ` +
	`Wenn du die Antwort nicht aus diesen Angaben ableiten kannst, sage das ehrlich.`

// AssistantClient answers visitor questions through a generative language
// model with a fixed zoo knowledge context
type AssistantClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewAssistantClient creates a new assistant client
func NewAssistantClient(baseURL, apiKey, model string, timeout time.Duration) *AssistantClient {
	return &AssistantClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type assistantPart struct {
	Text string `json:"text"`
}

type assistantContent struct {
	Role  string          `json:"role,omitempty"`
	Parts []assistantPart `json:"parts"`
}

// Ask sends a visitor question to the model and returns its answer
func (c *AssistantClient) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", models.ErrInvalidInput
	}
	if c.apiKey == "" {
		return "", models.ErrServiceUnavailable
	}

	payload := struct {
		SystemInstruction assistantContent   `json:"system_instruction"`
		Contents          []assistantContent `json:"contents"`
	}{
		SystemInstruction: assistantContent{
			Parts: []assistantPart{{Text: assistantContext}},
		},
		Contents: []assistantContent{
			{Role: "user", Parts: []assistantPart{{Text: question}}},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assistant payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create assistant request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send assistant request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read assistant response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return "", err
	}

	var raw struct {
		Candidates []struct {
			Content assistantContent `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}

	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant returned no answer")
	}

	return strings.TrimSpace(raw.Candidates[0].Content.Parts[0].Text), nil
}

package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	models "github.com/beingresonated/referral/internal/models"
)

const apiURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

const promptTemplate = `You are a friendly copywriter. Generate 3 different engaging messages to share with friends about a referral program. The program offers %d reward points and is called "%s".

Requirements for each message:
- Short and concise
- Include emojis
- Highlight the reward points
- Be friendly and personal
- Include a call to action

Generate exactly 3 messages, one per line.`

type Client struct {
	key    string
	client *http.Client
}

func NewClient(key string) *Client {
	return &Client{key, &http.Client{Timeout: 30 * time.Second}}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Генерация до трех строк реферального сообщения
func (c *Client) GenerateMessages(ctx context.Context, rewardPoints int, campaignName string) ([]string, error) {
	prompt := fmt.Sprintf(promptTemplate, rewardPoints, campaignName)
	payload, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens:   250,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: hugging face: %v", models.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: hugging face: %s", models.ErrExternal, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: hugging face: %v", models.ErrExternal, err)
	}

	var result []generateResponse
	err = json.Unmarshal(body, &result)
	if err != nil || len(result) == 0 {
		return nil, fmt.Errorf("%w: hugging face: unexpected response", models.ErrExternal)
	}

	return ExtractMessages(result[0].GeneratedText), nil
}

// Выбирает из сгенерированного текста до трех непустых строк,
// отбрасывая служебную разметку модели.
func ExtractMessages(text string) []string {
	messages := make([]string, 0, 3)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "```") || strings.Contains(line, "{") || strings.Contains(line, "[") {
			continue
		}
		messages = append(messages, line)
		if len(messages) == 3 {
			break
		}
	}
	return messages
}

package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	models "github.com/beingresonated/referral/internal/models"
)

const apiURL = "https://api.brevo.com/v3/smtp/email"

type Client struct {
	key        string
	sender     string
	senderName string
	client     *http.Client
}

func NewClient(key string, sender string, senderName string) *Client {
	return &Client{key, sender, senderName, &http.Client{Timeout: 10 * time.Second}}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailRequest struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	TextContent string    `json:"textContent"`
}

func (c *Client) SendEmail(ctx context.Context, to string, subject string, text string) error {
	payload, err := json.Marshal(emailRequest{
		Sender:      address{Email: c.sender, Name: c.senderName},
		To:          []address{{Email: to}},
		Subject:     subject,
		TextContent: text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: brevo: %v", models.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: brevo: %s", models.ErrExternal, resp.Status)
	}
	return nil
}

// Пакетная отправка: сбой одного адреса не прерывает остальные,
// возвращаются агрегированные счетчики.
func (c *Client) SendBatch(ctx context.Context, recipients []string, subject string, text string) (sent int, failed int) {
	for _, to := range recipients {
		if err := c.SendEmail(ctx, to, subject, text); err != nil {
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Client le avisa a la impresora de cartas cuando alguien busca una.
// Es best-effort: si el webhook falla solo lo logueamos.
type Client struct {
	http *http.Client
	url  string
}

type PrintJob struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
	User     string `json:"user"`
}

func New(webhookURL string) *Client {
	return &Client{
		http: &http.Client{Timeout: 5 * time.Second},
		url:  webhookURL,
	}
}

func (c *Client) Notify(ctx context.Context, job PrintJob) {
	if c == nil || c.url == "" {
		return
	}
	body, err := json.Marshal(job)
	if err != nil {
		log.Printf("printer: marshal: %v", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("printer: request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		log.Printf("printer: post: %v", err)
		return
	}
	_ = res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("printer: status %d", res.StatusCode)
	}
}

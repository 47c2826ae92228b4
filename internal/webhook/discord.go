// Package webhook posts order notifications to a Discord webhook URL.
// The endpoint is an opaque sink: responses are checked for an error
// status and otherwise discarded.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Field is one name/value pair rendered inside an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer is the small text line under an embed.
type Footer struct {
	Text string `json:"text"`
}

// Embed is a Discord rich message.
type Embed struct {
	Title     string  `json:"title"`
	Color     int     `json:"color"`
	Fields    []Field `json:"fields"`
	Timestamp string  `json:"timestamp"`
	Footer    *Footer `json:"footer,omitempty"`
}

type embedPayload struct {
	Embeds []Embed `json:"embeds"`
}

type filePayload struct {
	Content string `json:"content"`
}

// Client posts to a single webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a webhook client. The source UI sent these requests
// with no timeout at all; a server cannot afford that, so requests are
// capped at 15 seconds.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendEmbed posts one embed as a JSON webhook execution.
func (c *Client) SendEmbed(ctx context.Context, embed Embed) error {
	body, err := json.Marshal(embedPayload{Embeds: []Embed{embed}})
	if err != nil {
		return fmt.Errorf("marshal embed payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// SendFile posts a binary attachment as a multipart webhook execution,
// with the caption carried in the payload_json part.
func (c *Client) SendFile(ctx context.Context, filename string, file io.Reader, caption string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}

	payload, err := json.Marshal(filePayload{Content: caption})
	if err != nil {
		return fmt.Errorf("marshal file payload: %w", err)
	}
	if err := mw.WriteField("payload_json", string(payload)); err != nil {
		return fmt.Errorf("write payload_json part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return fmt.Errorf("build file request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

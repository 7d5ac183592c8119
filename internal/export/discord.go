package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobfinder/internal/model"
)

// DiscordWriter sends the report to a Discord channel via Webhook.
type DiscordWriter struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordWriter(webhookURL string) *DiscordWriter {
	return &DiscordWriter{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

func (dw *DiscordWriter) WriteReport(r Report) error {
	if len(r.Postings) == 0 {
		return dw.send(fmt.Sprintf("No matching postings in the last %d hours.", r.WindowHours))
	}

	// Discord has a 2000 char limit per message. Split into chunks.
	var chunks []string
	var current strings.Builder
	header := fmt.Sprintf("**Found %d matching posting(s):**\n\n", len(r.Postings))
	current.WriteString(header)

	for _, p := range r.Postings {
		entry := formatDiscordPosting(p)

		if current.Len()+len(entry) > 1900 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(entry)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	for _, chunk := range chunks {
		if err := dw.send(chunk); err != nil {
			return err
		}
	}
	return nil
}

func formatDiscordPosting(p model.CleanedPosting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%d. %s**\n", p.Rank, p.Title)
	fmt.Fprintf(&b, "> Company: %s\n", p.Company)
	fmt.Fprintf(&b, "> Location: %s\n", p.Location)
	fmt.Fprintf(&b, "> Board: %s\n", p.Board)
	fmt.Fprintf(&b, "> Posted: %s\n", p.PostedAtDisplay())
	if len(p.KeywordMatches) > 0 {
		fmt.Fprintf(&b, "> Keywords: %s\n", p.KeywordList())
	}
	if p.URL != "" {
		fmt.Fprintf(&b, "> [View posting](%s)\n", p.URL)
	}
	b.WriteString("\n")
	return b.String()
}

type discordPayload struct {
	Content string `json:"content"`
}

func (dw *DiscordWriter) send(text string) error {
	payload, err := json.Marshal(discordPayload{Content: text})
	if err != nil {
		return fmt.Errorf("discord: marshaling payload: %w", err)
	}

	resp, err := dw.client.Post(dw.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("discord: sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("discord: API error %d: %v", resp.StatusCode, result["message"])
	}

	return nil
}

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobfinder/internal/model"
)

// TelegramWriter sends the report to a Telegram chat via the Bot API.
type TelegramWriter struct {
	token  string
	chatID string
	client *http.Client
}

func NewTelegramWriter(token, chatID string) *TelegramWriter {
	return &TelegramWriter{
		token:  token,
		chatID: chatID,
		client: &http.Client{},
	}
}

func (tw *TelegramWriter) WriteReport(r Report) error {
	if len(r.Postings) == 0 {
		return tw.send(fmt.Sprintf("No matching postings in the last %d hours\\.", r.WindowHours))
	}

	// Telegram has a 4096 char limit per message. Split into chunks.
	var chunks []string
	var current strings.Builder
	header := fmt.Sprintf("*Found %d matching posting\\(s\\):*\n\n", len(r.Postings))
	current.WriteString(header)

	for _, p := range r.Postings {
		entry := formatPosting(p)

		if current.Len()+len(entry) > 3800 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(entry)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	for _, chunk := range chunks {
		if err := tw.send(chunk); err != nil {
			return err
		}
	}
	return nil
}

func formatPosting(p model.CleanedPosting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%d\\. %s*\n", p.Rank, escapeMarkdown(p.Title))
	fmt.Fprintf(&b, "Company: %s\n", escapeMarkdown(p.Company))
	fmt.Fprintf(&b, "Location: %s\n", escapeMarkdown(p.Location))
	fmt.Fprintf(&b, "Board: %s\n", escapeMarkdown(p.Board))
	fmt.Fprintf(&b, "Posted: %s\n", escapeMarkdown(p.PostedAtDisplay()))
	if len(p.KeywordMatches) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", escapeMarkdown(p.KeywordList()))
	}
	if p.URL != "" {
		fmt.Fprintf(&b, "[View posting](%s)\n", p.URL)
	}
	b.WriteString("\n")
	return b.String()
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
		"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
		">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
		"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
		".", "\\.", "!", "\\!",
	)
	return replacer.Replace(s)
}

func (tw *TelegramWriter) send(text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", tw.token)

	payload := map[string]string{
		"chat_id":    tw.chatID,
		"text":       text,
		"parse_mode": "MarkdownV2",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram: marshaling payload: %w", err)
	}

	resp, err := tw.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("telegram: API error %d: %v", resp.StatusCode, result["description"])
	}

	return nil
}

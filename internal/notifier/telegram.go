package notifier

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"transferbook/pkg/client"
	"transferbook/pkg/locale"
	"transferbook/pkg/model"
	"transferbook/pkg/sanitizer"
)

const DefaultTelegramBaseURL = "https://api.telegram.org"

type TelegramConfig struct {
	BaseURL  string
	BotToken string
	ChatID   string
}

// TelegramNotifier posts a formatted lead to a Telegram chat through the Bot
// API sendMessage method.
type TelegramNotifier struct {
	httpClient *client.HttpClient
	botToken   string
	chatID     string
}

func NewTelegramNotifier(cfg TelegramConfig, httpClient *client.HttpClient) *TelegramNotifier {
	if httpClient == nil {
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultTelegramBaseURL
		}
		httpClient = client.NewHttpClient(strings.TrimRight(baseURL, "/"))
	}
	return &TelegramNotifier{
		httpClient: httpClient,
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
	}
}

func (n *TelegramNotifier) Name() string {
	return "telegram"
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (n *TelegramNotifier) Notify(ctx context.Context, payload *model.BookingPayload) error {
	req := sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  FormatTelegramMessage(payload),
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}

	resp, err := n.httpClient.POST(ctx, "/bot"+n.botToken+"/sendMessage", req)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}

	var body sendMessageResponse
	decodeErr := resp.DecodeJSON(&body)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && body.Description != "" {
			return fmt.Errorf("telegram sendMessage: status %d: %s", resp.StatusCode, body.Description)
		}
		return fmt.Errorf("telegram sendMessage: status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("telegram sendMessage: decode response: %w", decodeErr)
	}
	if !body.OK {
		return fmt.Errorf("telegram sendMessage rejected: %s", body.Description)
	}
	return nil
}

// FormatTelegramMessage renders the lead as Telegram HTML. User input is
// escaped; the phone is linked in E.164 when it can be parsed.
func FormatTelegramMessage(p *model.BookingPayload) string {
	var b strings.Builder

	title := "🚐 New transfer request"
	if p.BookingType == model.BookingTypeTour {
		title = "🗺 New tour booking"
	}
	fmt.Fprintf(&b, "<b>%s</b>\n\n", title)

	if p.SelectedTour != "" {
		line(&b, "Tour", p.SelectedTour)
	}
	line(&b, "Name", p.FullName)
	line(&b, "Email", p.Email)
	b.WriteString("<b>Phone:</b> " + phoneLink(p.CountryCode, p.Phone) + "\n")
	if country := countryName(p.CountryCode, p.Phone); country != "" {
		line(&b, "Country", country)
	}
	if p.Passport != "" {
		line(&b, "Passport", p.Passport)
	}

	b.WriteString("\n")
	location(&b, "Pickup", p.PickupLocation)
	if p.BookingType != model.BookingTypeTour {
		location(&b, "Dropoff", p.DropoffLocation)
	}
	line(&b, "When", p.IsoDateTime)
	line(&b, "Time", p.Time)

	b.WriteString("\n")
	line(&b, "Passengers", p.Passengers)
	line(&b, "Luggage", p.Luggage)
	line(&b, "Child seats", p.ChildSeats)
	line(&b, "Vehicle", p.Vehicle)
	if p.FlightNumber != "" {
		line(&b, "Flight", p.FlightNumber)
	}
	if p.Notes != "" {
		line(&b, "Notes", p.Notes)
	}

	b.WriteString("\n")
	line(&b, "Language", p.Language)
	line(&b, "Submitted", p.SubmittedAt)
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<b>%s:</b> %s\n", label, html.EscapeString(value))
}

func location(b *strings.Builder, label string, loc model.LocationDetails) {
	text := loc.Description
	if text == model.NotSpecified {
		text = loc.Label
	}
	fmt.Fprintf(b, "<b>%s:</b> %s", label, html.EscapeString(text))
	if loc.Coordinates != model.NotAvailable {
		fmt.Fprintf(b, " (<a href=\"https://www.google.com/maps?q=%s\">map</a>)", html.EscapeString(loc.Coordinates))
	}
	b.WriteString("\n")
}

func phoneLink(countryCode, phone string) string {
	e164 := sanitizer.NormalizePhone(countryCode, phone)
	display := strings.TrimSpace(countryCode + " " + phone)
	if e164 == "" {
		return html.EscapeString(display)
	}
	return fmt.Sprintf("<a href=\"tel:%s\">%s</a>", e164, html.EscapeString(display))
}

// countryName falls back to the number itself when the visitor typed the
// dial code into the phone field.
func countryName(dialCode, phone string) string {
	if c := locale.LookupDialCode(dialCode); c != nil {
		return c.Name
	}
	if c := locale.InferCountryFromPhone(phone); c != nil && strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return c.Name
	}
	return ""
}

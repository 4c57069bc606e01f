package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// DefaultWhatsAppURL is the Graph API version used for WhatsApp Cloud.
const DefaultWhatsAppURL = "https://graph.facebook.com/v19.0"

// TextSender sends a plain text message to one recipient.
type TextSender interface {
	SendText(ctx context.Context, to, body string) Result
}

// WhatsAppClient sends text messages through the WhatsApp Cloud API.
type WhatsAppClient struct {
	baseURL       string
	token         string
	phoneNumberID string
	httpClient    *http.Client
}

// NewWhatsAppClient creates a WhatsApp Cloud client. Empty credentials leave
// it unconfigured, in which case every SendText is skipped.
func NewWhatsAppClient(baseURL, token, phoneNumberID string, httpClient *http.Client) *WhatsAppClient {
	return &WhatsAppClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		token:         token,
		phoneNumberID: phoneNumberID,
		httpClient:    httpClient,
	}
}

// Configured reports whether both the token and phone number ID are set.
func (c *WhatsAppClient) Configured() bool {
	return c.token != "" && c.phoneNumberID != ""
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

// SendText sends body to the phone number to.
func (c *WhatsAppClient) SendText(ctx context.Context, to, body string) Result {
	if !c.Configured() {
		return skipped("WhatsApp not configured")
	}

	payload := whatsAppRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: body},
	}
	endpoint := c.baseURL + "/" + url.PathEscape(c.phoneNumberID) + "/messages"
	return postJSON(ctx, c.httpClient, endpoint, "Bearer "+c.token, payload)
}

var _ TextSender = (*WhatsAppClient)(nil)

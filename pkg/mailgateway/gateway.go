// Package mailgateway sends the transactional emails triggered by contact
// form submissions. The HTTP gateway posts to an external mail API; the mock
// gateway logs instead and is the default outside production.
package mailgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
)

// Gateway represents a mail gateway interface
type Gateway interface {
	SendContactNotification(contact *models.Contact) error
	SendContactConfirmation(contact *models.Contact) error
}

// HTTPGateway sends mail through an external HTTP mail API
type HTTPGateway struct {
	BaseURL    string
	APIKey     string
	From       string
	AdminEmail string
	httpClient *http.Client
}

// MockGateway logs mail instead of sending it
type MockGateway struct {
	AdminEmail string
}

// NewGateway creates the gateway selected by the configuration
func NewGateway(cfg *config.Config) Gateway {
	if cfg.Mail.Mock || cfg.Mail.BaseURL == "" {
		return &MockGateway{AdminEmail: cfg.Mail.AdminEmail}
	}
	return &HTTPGateway{
		BaseURL:    cfg.Mail.BaseURL,
		APIKey:     cfg.Mail.APIKey,
		From:       cfg.Mail.From,
		AdminEmail: cfg.Mail.AdminEmail,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (g *HTTPGateway) send(to, subject, body string) error {
	requestBody := map[string]interface{}{
		"from":    g.From,
		"to":      to,
		"subject": subject,
		"text":    body,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest("POST", g.BaseURL+"/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendContactNotification notifies the site admin about a new submission
func (g *HTTPGateway) SendContactNotification(contact *models.Contact) error {
	subject := fmt.Sprintf("New contact inquiry: %s", contact.Subject)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nInquiry type: %s\n\n%s",
		contact.Name, contact.Email, contact.Phone, contact.InquiryType, contact.Message)
	return g.send(g.AdminEmail, subject, body)
}

// SendContactConfirmation acknowledges the submission to its sender
func (g *HTTPGateway) SendContactConfirmation(contact *models.Contact) error {
	subject := "We received your inquiry"
	body := fmt.Sprintf("Dear %s,\n\nThank you for contacting AMZ Properties. Our team will get back to you shortly.\n\nYour message:\n%s",
		contact.Name, contact.Message)
	return g.send(contact.Email, subject, body)
}

// SendContactNotification logs the admin notification
func (g *MockGateway) SendContactNotification(contact *models.Contact) error {
	log.Printf("[Mock Mail Gateway] Notification to %s: new inquiry %q from %s", g.AdminEmail, contact.Subject, contact.Email)
	return nil
}

// SendContactConfirmation logs the sender confirmation
func (g *MockGateway) SendContactConfirmation(contact *models.Contact) error {
	log.Printf("[Mock Mail Gateway] Confirmation to %s for inquiry %q", contact.Email, contact.Subject)
	return nil
}

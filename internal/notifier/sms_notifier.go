package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	config "github.com/Keoroanthony/go-crm/configs"
)

type SMSResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Cost       string `json:"cost"`
			Status     string `json:"status"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// SMSNotifier sends confirmations through the Africa's Talking messaging API.
type SMSNotifier struct {
	cfg    config.AfricaTalkingConfig
	client *http.Client
}

func NewSMSNotifier(cfg config.AfricaTalkingConfig, client *http.Client) *SMSNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &SMSNotifier{cfg: cfg, client: client}
}

func (n *SMSNotifier) NotifyOrderCreated(ctx context.Context, oc OrderConfirmation) error {
	// phone is optional on customers
	if oc.Phone == "" {
		return nil
	}

	message := fmt.Sprintf("Your order #%d has been successfully placed! Total: %s. Thank you!", oc.OrderID, oc.TotalAmount.StringFixed(2))

	data := url.Values{}
	data.Set("username", n.cfg.Username)
	data.Set("to", oc.Phone)
	data.Set("message", message)
	data.Set("from", n.cfg.SenderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.SMSURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", n.cfg.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("SMS send failed to %s for order %d: %v", oc.Phone, oc.OrderID, err)
		return fmt.Errorf("SMS send failed: %w", err)
	}
	defer resp.Body.Close()

	var smsResp SMSResponse
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		if decodeErr := json.NewDecoder(resp.Body).Decode(&smsResp); decodeErr == nil {
			log.Printf("SMS API returned error for %s (order %d): status %d, message: %s", oc.Phone, oc.OrderID, resp.StatusCode, smsResp.SMSMessageData.Message)
		}
		return fmt.Errorf("SMS API returned non-success status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&smsResp); err != nil {
		return fmt.Errorf("failed to decode SMS response: %w", err)
	}

	log.Printf("SMS sent to %s for order %d. Message: %s", oc.Phone, oc.OrderID, smsResp.SMSMessageData.Message)
	return nil
}

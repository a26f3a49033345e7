package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// PushService delivers push notifications through the Expo push API.
type PushService struct {
	endpoint string
	client   *http.Client
}

// NewPushService creates a PushService posting to the given Expo endpoint.
func NewPushService(endpoint string) *PushService {
	return &PushService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type expoPushMessage struct {
	To    string                 `json:"to"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Sound string                 `json:"sound,omitempty"`
}

// Send pushes one notification to a device token. Missing tokens are a
// silent no-op: emulators and users who denied permission have none.
func (s *PushService) Send(token, title, body string, data map[string]interface{}) error {
	if token == "" {
		return nil
	}

	msg := expoPushMessage{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
		Sound: "default",
	}

	payload, err := json.Marshal([]expoPushMessage{msg})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("[Push] Failed to send notification: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Push] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("expo push returned status %d", resp.StatusCode)
	}

	return nil
}

// NotifyRechargeSuccess tells the buyer a recharge went through.
func (s *PushService) NotifyRechargeSuccess(token, phoneNumber string, amount float64) error {
	return s.Send(token,
		"✅ Recarga Exitosa",
		fmt.Sprintf("Se recargaron %.0f CUP al número +53 %s", amount, phoneNumber),
		map[string]interface{}{
			"type":         "recharge_success",
			"phone_number": phoneNumber,
			"amount":       amount,
		},
	)
}

// Broadcast sends one promotional message to every token in the list and
// returns how many deliveries were attempted successfully.
func (s *PushService) Broadcast(tokens []string, title, body string) int {
	sent := 0
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if err := s.Send(token, title, body, map[string]interface{}{"type": "admin_broadcast"}); err != nil {
			continue
		}
		sent++
	}
	return sent
}

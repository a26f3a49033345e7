package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
	client      *http.Client
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// RechargeNotification contains order data for the admin alert.
type RechargeNotification struct {
	OrderID     string
	PackageName string
	Amount      float64
	Price       float64
	PhoneNumber string
	UserName    string
	UserEmail   string
	Status      string
}

// NotifyNewRecharge alerts the admin chat about a processed recharge.
func (s *TelegramService) NotifyNewRecharge(n RechargeNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	statusText := "⏳ Pendiente"
	switch n.Status {
	case "completed":
		statusText = "✅ Completada"
	case "failed":
		statusText = "❌ Fallida"
	}

	message := fmt.Sprintf(`<b>📱 NUEVA RECARGA</b>
<b>📋 Pedido:</b> %s
<b>📦 Paquete:</b> %s (%.0f CUP)
<b>📞 Destino:</b> +53 %s
<b>👤 Cliente:</b> %s (%s)
<b>💰 Pagado:</b> %.2f
<b>📍 Estado:</b> %s`,
		n.OrderID,
		n.PackageName,
		n.Amount,
		n.PhoneNumber,
		n.UserName,
		n.UserEmail,
		n.Price,
		statusText,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/deepak4044/service_marketplace/configs"
	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/models"
)

type FCMService struct {
	ServerKey string
}

var PushClient *FCMService

type PushTarget struct {
	User    *models.User
	Title   string
	Message string
	Type    string
}

type fcmPayload struct {
	To           string            `json:"to"`
	Notification map[string]string `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

func InitPushService() {
	serverKey := config.Config("FCM_SERVER_KEY")
	if serverKey == "" {
		log.Println("⚠️ Push service not configured. Missing FCM server key.")
		PushClient = nil
		return
	}

	PushClient = &FCMService{ServerKey: serverKey}
	log.Println("✅ Push service initialized successfully.")
}

func (s *FCMService) send(deviceToken, title, message, notificationType string) error {
	payload := fcmPayload{
		To:           deviceToken,
		Notification: map[string]string{"title": title, "body": message},
		Data:         map[string]string{"type": notificationType},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", "https://fcm.googleapis.com/fcm/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Authorization", "key="+s.ServerKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("FCM error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// SendNotificationToUsers persists one notification row per target and pushes
// to the device when a token is present. Fire-and-forget: failures are logged,
// never propagated, and callers invoke this only after their transaction has
// committed.
func SendNotificationToUsers(targets []PushTarget) {
	for _, target := range targets {
		if target.User == nil {
			continue
		}

		record := models.UserNotification{
			UserID:  target.User.ID,
			Title:   target.Title,
			Message: target.Message,
			Type:    target.Type,
		}
		if err := database.DB.Create(&record).Error; err != nil {
			log.Printf("🔥 Failed to persist notification for user %s: %v", target.User.ID, err)
		}

		if PushClient == nil || target.User.DeviceToken == nil || *target.User.DeviceToken == "" {
			continue
		}

		if err := PushClient.send(*target.User.DeviceToken, target.Title, target.Message, target.Type); err != nil {
			log.Printf("🔥 Failed to push notification to user %s: %v", target.User.ID, err)
			continue
		}

		log.Printf("✅ Push notification sent to user %s", target.User.ID)
	}
}

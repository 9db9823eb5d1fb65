package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

const apiEndpoint = "https://onesignal.com/api/v1"

// NotificationRequest is the request body for creating a notification.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

type OneSignalClient struct {
	client *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
	}
}

// SendNotification submits a notification request to OneSignal.
func (c *OneSignalClient) SendNotification(ctx context.Context, request *NotificationRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiEndpoint+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+viper.GetString("onesignal.key"))

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onesignal returns status: %d", resp.StatusCode)
	}

	return nil
}

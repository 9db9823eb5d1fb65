package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/visitcacapava/checkin-api/utils"
)

// SendAwardNotification is a background job to congratulate a visitor who
// just earned a category badge. The reward is already committed by the
// time this runs, so a delivery failure only costs the push message.
func (m *BackgroundManager) SendAwardNotification(accountNumber string, badge string) error {
	account, err := m.store.GetAccount(accountNumber)
	if err != nil {
		return err
	}

	lang := "en"
	if l, ok := account.Profile.Metadata["language"].(string); ok && l != "" {
		lang = l
	}

	title := "New badge earned!"
	body := fmt.Sprintf("You earned the %s badge.", badge)

	if loc := utils.NewLocalizer(lang); loc != nil {
		if msg, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification_badge_title",
		}); err == nil {
			title = msg
		}
		if msg, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    "notification_badge_body",
			TemplateData: map[string]interface{}{"Badge": badge},
		}); err == nil {
			body = msg
		}
	}

	return m.notifier.NotifyAccountByText(accountNumber,
		map[string]string{"en": title},
		map[string]string{"en": body},
		map[string]interface{}{
			"notification_type": "BADGE_AWARD",
			"badge":             badge,
		})
}

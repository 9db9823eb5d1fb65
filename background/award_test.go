package background

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/visitcacapava/checkin-api/api/mocks"
	"github.com/visitcacapava/checkin-api/schema"
)

type capturedNotification struct {
	accountNumber string
	headings      map[string]string
	contents      map[string]string
	data          map[string]interface{}
}

type notifierStub struct {
	sent []capturedNotification
	err  error
}

func (n *notifierStub) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	n.sent = append(n.sent, capturedNotification{accountNumber, headings, contents, data})
	return n.err
}

func TestSendAwardNotification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	notifier := &notifierStub{}

	m := BackgroundManager{
		store:    a,
		notifier: notifier,
	}

	a.EXPECT().GetAccount("account-1").Return(&schema.Account{
		AccountNumber: "account-1",
		Profile: schema.AccountProfile{
			AccountNumber: "account-1",
		},
	}, nil).Times(1)

	err := m.SendAwardNotification("account-1", "geopark-explorer")
	assert.Nil(t, err)

	assert.Len(t, notifier.sent, 1)
	sent := notifier.sent[0]
	assert.Equal(t, "account-1", sent.accountNumber)
	assert.NotEmpty(t, sent.headings["en"])
	assert.Contains(t, sent.contents["en"], "geopark-explorer")
	assert.Equal(t, "BADGE_AWARD", sent.data["notification_type"])
	assert.Equal(t, "geopark-explorer", sent.data["badge"])
}

func TestSendAwardNotificationUnknownAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCheckinCore(ctl)
	notifier := &notifierStub{}

	m := BackgroundManager{
		store:    a,
		notifier: notifier,
	}

	a.EXPECT().GetAccount("nobody").Return(nil, assert.AnError).Times(1)

	err := m.SendAwardNotification("nobody", "geopark-explorer")
	assert.NotNil(t, err)
	assert.Empty(t, notifier.sent)
}

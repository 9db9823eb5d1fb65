package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"

	"github.com/visitcacapava/checkin-api/external/onesignal"
	"github.com/visitcacapava/checkin-api/store"
)

// BackgroundManager is a struct for check-in background manager
type BackgroundManager struct {
	store store.CheckinCore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewCheckinStore(ormDB),
		notifier:   NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("checkin-worker", 5)
	return m.worker.Launch()
}

package services

import (
	"fmt"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"gorm.io/gorm"
)

type eventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

func InitEventDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{db: db, rt: rt, ps: ps}
}

// EmitEvent records an activity alert and fans it out over websocket
// and push. Safe to call anywhere; a no-op until initialized.
func EmitEvent(userID uint, typ, message string) {
	if _events.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _events.db.Create(a).Error

	if _events.rt != nil {
		_events.rt.BroadcastAlert(userID, a)
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, "SaveBite", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// ListAlerts returns a user's most recent alerts, newest first.
func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _events.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}

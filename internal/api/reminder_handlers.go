package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/reminder"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/remote"
)

type ReminderPreferenceRequest struct {
	Frequency internal.Frequency `json:"frequency"`
}

// PutReminderPreference stores the user's reminder preference remotely and
// (re)arms the scheduler. This is the one path where a scheduling refusal is
// surfaced, since it blocks the user's explicit action.
func PutReminderPreference(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body ReminderPreferenceRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if !body.Frequency.Valid() {
			HandleError(c, app.Logger(), errors.New("frequency must be one of: none, once, twice, thrice"), 400, "Invalid frequency")
			return
		}

		pref := internal.ReminderPreference{Frequency: body.Frequency, UserName: user.Name}
		if err := app.Remote().Push(c.Request.Context(), remote.CollectionUsers, user.ID, pref); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to store preference")
			return
		}

		if err := app.Reminders().ScheduleNotifications(body.Frequency, user.Name); err != nil {
			if errors.Is(err, reminder.ErrNotificationsDisabled) {
				HandleError(c, app.Logger(), err, 409, "Cannot honor reminder preference")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to schedule reminders")
			return
		}

		HandleSuccess(c, app.Logger(), pref, nil)
	}
}

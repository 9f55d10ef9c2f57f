package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/service"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

func PostEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateEntry(c.Request.Context(), app.Entries(), app.Remote(), app.Syncer(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

// GetEntries lists the user's entries, optionally bounded by from/to query
// parameters (RFC 3339) for calendar views.
func GetEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var (
			entries []internal.EmotionEntry
			err     error
		)
		fromParam, toParam := c.Query("from"), c.Query("to")
		if fromParam != "" || toParam != "" {
			from, to, perr := parseRange(fromParam, toParam)
			if perr != nil {
				HandleError(c, app.Logger(), perr, 400, "Invalid time range")
				return
			}
			entries, err = app.Entries().ListEntriesInRange(c.Request.Context(), user.ID, from, to)
		} else {
			entries, err = app.Entries().ListEntriesForUser(c.Request.Context(), user.ID)
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		HandleSuccess(c, app.Logger(), entries, map[string]any{"count": len(entries)})
	}
}

func GetLatestEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		entry, err := service.LatestEntry(c.Request.Context(), app.Entries(), user)
		if err == store.ErrNotFound {
			HandleError(c, app.Logger(), err, 404, "No entries yet")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch latest entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func GetEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		entry, err := service.GetEntry(c.Request.Context(), app.Entries(), user, c.Param("id"))
		if err == store.ErrNotFound {
			HandleError(c, app.Logger(), err, 404, "Entry not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func PutEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.UpdateEntry(c.Request.Context(), app.Entries(), app.Syncer(), user, c.Param("id"), &body)
		if err == store.ErrNotFound {
			HandleError(c, app.Logger(), err, 404, "Entry not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func DeleteEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		err := service.DeleteEntry(c.Request.Context(), app.Entries(), app.Remote(), app.Logger(), user, c.Param("id"))
		if err == store.ErrNotFound {
			HandleError(c, app.Logger(), err, 404, "Entry not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete entry")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": c.Param("id")})
	}
}

func GetAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		entries, err := app.Entries().ListEntriesForUser(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for analytics")
			return
		}

		HandleSuccess(c, app.Logger(), service.Summarize(entries, time.Now()), nil)
	}
}

func parseRange(fromParam, toParam string) (time.Time, time.Time, error) {
	from := time.Unix(0, 0)
	to := time.Now()
	if fromParam != "" {
		parsed, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if toParam != "" {
		parsed, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}

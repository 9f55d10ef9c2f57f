package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
	"github.com/skippyskiddy/MindfulJot-App-sub000/internal/store"
)

// GetEmotions lists the catalog, optionally one category ordered by energy
// level descending.
func GetEmotions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")

		var (
			emotions []internal.Emotion
			err      error
		)
		if category != "" {
			if !validCategory(internal.Category(category)) {
				HandleError(c, app.Logger(), errUnknownCategory, 400, "Invalid category")
				return
			}
			emotions, err = app.Emotions().ListEmotionsByCategory(c.Request.Context(), internal.Category(category))
		} else {
			emotions, err = app.Emotions().ListEmotions(c.Request.Context())
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch emotions")
			return
		}

		HandleSuccess(c, app.Logger(), emotions, map[string]any{"count": len(emotions)})
	}
}

func GetEmotionByName(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		emotion, err := app.Emotions().GetEmotionByName(c.Request.Context(), c.Param("name"))
		if err == store.ErrNotFound {
			HandleError(c, app.Logger(), err, 404, "Emotion not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch emotion")
			return
		}

		HandleSuccess(c, app.Logger(), emotion, nil)
	}
}

// PostEmotionReset wipes and rewrites the remote catalog, then reseeds the
// local cache from it.
func PostEmotionReset(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		emotions, err := app.Seeder().ForceResetEmotions(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to reset emotion catalog")
			return
		}

		if err := app.Emotions().InsertEmotions(c.Request.Context(), emotions); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to reseed local catalog")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"count": len(emotions)})
	}
}

var errUnknownCategory = errors.New("unknown category")

func validCategory(c internal.Category) bool {
	for _, known := range internal.Categories() {
		if c == known {
			return true
		}
	}
	return false
}

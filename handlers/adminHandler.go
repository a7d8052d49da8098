package handlers

import (
	"context"

	"DentalDesk/database"
	"DentalDesk/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// codeFlusher is the slice of the cache the handler needs to invalidate
// pending password-reset codes; cache.Cache satisfies it.
type codeFlusher interface {
	DeleteAll(ctx context.Context, pattern string) error
}

// AdminHandler exposes database maintenance operations.
type AdminHandler struct {
	store *database.Store
	codes codeFlusher
}

func NewAdminHandler(store *database.Store, codes codeFlusher) *AdminHandler {
	return &AdminHandler{store: store, codes: codes}
}

// Backup copies the database file to a timestamped sibling path.
func (h *AdminHandler) Backup(c *gin.Context) {
	path, err := h.store.Backup()
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, gin.H{"backup_path": path})
}

// Restore overwrites the database file with the given backup and reopens it.
// Pending reset codes are flushed since they may refer to credential state
// the restore rolled back.
func (h *AdminHandler) Restore(c *gin.Context) {
	var body struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Path == "" {
		c.JSON(400, gin.H{"error": "Missing backup path"})
		return
	}

	if err := h.store.Restore(body.Path); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	if h.codes != nil {
		if err := h.codes.DeleteAll(c.Request.Context(), "reset_code:*"); err != nil {
			log.Warn().Err(err).Msg("failed to flush pending reset codes after restore")
		}
	}
	c.Status(200)
}

// Health reports the storage availability so clients can surface the
// reduced-functionality mode.
func (h *AdminHandler) Health(c *gin.Context) {
	status := "ok"
	code := 200
	if !h.store.Available() {
		status = "database unavailable"
		code = 503
	}
	c.JSON(code, gin.H{"status": status})
}

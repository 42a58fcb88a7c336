package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command: a fresh survey session
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.CloseAdmin(userID)
	return h.respond(c, h.restart(context.Background(), userID))
}

// handleAdmin handles /admin command
func (h *Handler) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened admin viewer", zap.Int64("user_id", userID))

	return h.respond(c, h.openAdmin(userID))
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	ctx := context.Background()

	if h.InAdmin(userID) {
		r, password := h.adminText(ctx, userID, text)
		if password {
			// Remove the password from the chat history
			if err := c.Delete(); err != nil {
				h.logger.Debug("Failed to delete password message", zap.Error(err))
			}
		}
		return h.respond(c, r)
	}

	return h.respond(c, h.answerText(ctx, userID, text))
}

package handler

import (
	"context"
	"strings"
	"unicode"

	"surveybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallbackData splits raw "\funique|data" callback payloads
func splitCallbackData(raw string) (unique, data string) {
	cleaned := cleanCallbackData(raw)
	unique, data, _ = strings.Cut(cleaned, "|")
	return unique, data
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The same question was rendered again, e.g. Next was pressed twice
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// respond delivers a reply. A single text under a callback edits the message in place.
func (h *Handler) respond(c tele.Context, r reply) error {
	userID := c.Sender().ID

	var opts []interface{}
	if r.markup != nil {
		opts = append(opts, r.markup)
	}

	if c.Callback() != nil {
		if r.alert != "" {
			return c.Respond(&tele.CallbackResponse{Text: r.alert, ShowAlert: true})
		}
		if len(r.texts) == 0 {
			return c.Respond()
		}
		if len(r.texts) == 1 {
			if err := c.Edit(r.texts[0], opts...); err != nil {
				if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
					return nil
				}
				return c.Send(r.texts[0], opts...)
			}
			return c.Respond()
		}
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	} else if r.alert != "" {
		if err := c.Send(r.alert); err != nil {
			return err
		}
	}

	for i, text := range r.texts {
		var err error
		if i == len(r.texts)-1 {
			err = c.Send(text, opts...)
		} else {
			err = c.Send(text)
		}
		if err != nil {
			h.logger.Error("Failed to send message", zap.Error(err), zap.Int64("user_id", userID))
			return err
		}
	}
	return nil
}

// handleCallback handles callbacks that were not routed by their unique
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, data := callback.Unique, cleanCallbackData(callback.Data)
	if unique == "" {
		unique, data = splitCallbackData(callback.Data)
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch unique {
	case btnNext.Unique:
		return h.handleNext(c)
	case btnBack.Unique:
		return h.handleBack(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	case btnRefresh.Unique:
		return h.handleRefresh(c)
	case btnExitAdmin.Unique:
		return h.handleExitAdmin(c)
	}

	if field, ok := choiceFields[unique]; ok {
		return h.respond(c, h.answerChoice(context.Background(), c.Sender().ID, field, data))
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleNext advances the wizard
func (h *Handler) handleNext(c tele.Context) error {
	return h.respond(c, h.runWizard(context.Background(), c.Sender().ID, domain.Next{}))
}

// handleBack returns to the previous question
func (h *Handler) handleBack(c tele.Context) error {
	return h.respond(c, h.runWizard(context.Background(), c.Sender().ID, domain.Back{}))
}

// handleRestart starts the survey over
func (h *Handler) handleRestart(c tele.Context) error {
	return h.respond(c, h.restart(context.Background(), c.Sender().ID))
}

// handleChoice answers a choice question from its button
func (h *Handler) handleChoice(c tele.Context) error {
	callback := c.Callback()
	field, ok := choiceFields[callback.Unique]
	if !ok {
		return c.Respond()
	}

	value := cleanCallbackData(callback.Data)
	return h.respond(c, h.answerChoice(context.Background(), c.Sender().ID, field, value))
}

// handleRefresh reloads the admin response list
func (h *Handler) handleRefresh(c tele.Context) error {
	return h.respond(c, h.refreshAdmin(context.Background(), c.Sender().ID))
}

// handleExitAdmin leaves the admin viewer
func (h *Handler) handleExitAdmin(c tele.Context) error {
	return h.respond(c, h.closeAdmin(c.Sender().ID))
}

package handler

import (
	"context"
	"fmt"

	"surveybot/internal/domain"

	"go.uber.org/zap"
)

// openAdmin switches the user to the admin viewer
func (h *Handler) openAdmin(userID int64) reply {
	h.OpenAdmin(userID)
	return reply{texts: []string{textAdminPrompt}, markup: adminMarkup()}
}

// closeAdmin returns the user to the wizard where they left it
func (h *Handler) closeAdmin(userID int64) reply {
	h.CloseAdmin(userID)
	return wizardReply(h.GetWizard(userID))
}

// adminLogin authenticates with the given password and, on success, loads the list
func (h *Handler) adminLogin(ctx context.Context, userID int64, password string) reply {
	session, effect, ok := h.dispatchAdmin(userID, domain.Login{Password: password})
	if !ok {
		return reply{}
	}
	if effect != domain.AdminEffectAuthenticate {
		if session.Authenticated {
			return renderAdmin(session)
		}
		// login already in flight
		return reply{}
	}

	err := h.adminService.Login(ctx, userID, password)

	session, effect, ok = h.dispatchAdmin(userID, domain.LoginDone{Err: err})
	if !ok {
		return reply{}
	}

	switch effect {
	case domain.AdminEffectInvalidPassword:
		return reply{alert: textInvalidPassword, texts: []string{textAdminPrompt}, markup: adminMarkup()}
	case domain.AdminEffectList:
		return h.adminList(ctx, userID, session.Password)
	}

	return reply{}
}

// adminList fetches the responses with the session password and renders them
func (h *Handler) adminList(ctx context.Context, userID int64, password string) reply {
	responses, err := h.adminService.Responses(ctx, userID, password)

	session, effect, ok := h.dispatchAdmin(userID, domain.LoadResponses{Responses: responses, Err: err})
	if !ok || effect != domain.AdminEffectRender {
		return reply{}
	}

	h.logger.Info("Admin responses loaded",
		zap.Int64("user_id", userID),
		zap.Int("count", len(session.Responses)),
	)
	return renderAdmin(session)
}

// adminText routes a text message sent in the admin viewer. The bool reports
// whether the message held a password attempt and should be removed from chat.
func (h *Handler) adminText(ctx context.Context, userID int64, text string) (reply, bool) {
	session, exists := h.adminSession(userID)
	if !exists {
		return reply{}, false
	}
	if session.Authenticated {
		return reply{texts: []string{textAdminUseButtons}, markup: adminListMarkup()}, false
	}
	return h.adminLogin(ctx, userID, text), true
}

// refreshAdmin reloads the list for an authenticated session
func (h *Handler) refreshAdmin(ctx context.Context, userID int64) reply {
	session, exists := h.adminSession(userID)
	if !exists || !session.Authenticated {
		return reply{}
	}
	return h.adminList(ctx, userID, session.Password)
}

// adminHeader heads the list with the number of responses
func adminHeader(count int) string {
	return fmt.Sprintf(textAdminResponses, count)
}

// renderAdmin shows the header and one message per response card
func renderAdmin(session domain.AdminSession) reply {
	texts := append([]string{adminHeader(len(session.Responses))}, domain.RenderResponses(session.Responses)...)
	return reply{texts: texts, markup: adminListMarkup()}
}

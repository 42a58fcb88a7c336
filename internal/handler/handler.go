package handler

import (
	"sync"

	"surveybot/internal/domain"
	"surveybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	surveyService *service.SurveyService
	adminService  *service.AdminService
	logger        *zap.Logger

	// Per-user wizards and admin sessions (in-memory state machines).
	// A user with an admin session is in the admin viewer.
	wizards  map[int64]domain.WizardState
	sessions map[int64]domain.AdminSession
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	surveyService *service.SurveyService,
	adminService *service.AdminService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		surveyService: surveyService,
		adminService:  adminService,
		logger:        logger,
		wizards:       make(map[int64]domain.WizardState),
		sessions:      make(map[int64]domain.AdminSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdmin)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnBack, h.handleBack)
	h.bot.Handle(&btnRestart, h.handleRestart)
	h.bot.Handle(&btnHasCardYes, h.handleChoice)
	h.bot.Handle(&btnGenderMale, h.handleChoice)
	h.bot.Handle(&btnRefresh, h.handleRefresh)
	h.bot.Handle(&btnExitAdmin, h.handleExitAdmin)

	// Generic callback handler for buttons whose unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetWizard returns user's current wizard state
func (h *Handler) GetWizard(userID int64) domain.WizardState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.wizards[userID]
	if !exists {
		return domain.NewWizardState()
	}
	return state
}

// dispatch reduces an action against the user's wizard under the state lock
func (h *Handler) dispatch(userID int64, action domain.WizardAction) (domain.WizardState, domain.WizardEffect) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	state, exists := h.wizards[userID]
	if !exists {
		state = domain.NewWizardState()
	}

	state, effect := domain.Reduce(state, action)
	h.wizards[userID] = state
	return state, effect
}

// InAdmin reports whether the user is in the admin viewer
func (h *Handler) InAdmin(userID int64) bool {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	_, exists := h.sessions[userID]
	return exists
}

// OpenAdmin starts a fresh admin session
func (h *Handler) OpenAdmin(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.sessions[userID] = domain.AdminSession{}
}

// CloseAdmin destroys the admin session, forgetting the password
func (h *Handler) CloseAdmin(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.sessions, userID)
}

// adminSession returns a copy of the user's admin session, if one is open
func (h *Handler) adminSession(userID int64) (domain.AdminSession, bool) {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	session, exists := h.sessions[userID]
	return session, exists
}

// dispatchAdmin reduces an action against the user's admin session.
// It reports false when the session was closed in the meantime.
func (h *Handler) dispatchAdmin(userID int64, action domain.AdminAction) (domain.AdminSession, domain.AdminEffect, bool) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	session, exists := h.sessions[userID]
	if !exists {
		return domain.AdminSession{}, domain.AdminEffectIgnored, false
	}

	session, effect := domain.ReduceAdmin(session, action)
	h.sessions[userID] = session
	return session, effect, true
}

package handler

import (
	"context"

	"surveybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// reply is what the bot sends back for one interaction.
// alert is a blocking notification; markup goes under the last text.
type reply struct {
	alert  string
	texts  []string
	markup *tele.ReplyMarkup
}

// wizardReply renders the wizard after a plain state change
func wizardReply(state domain.WizardState) reply {
	if state.Submitted {
		return reply{texts: []string{textThanks}, markup: restartMarkup()}
	}
	return reply{texts: []string{questionText(state)}, markup: questionMarkup(state)}
}

// runWizard applies actions in order, stopping at the first one that does not
// simply change state, then performs the resulting effect
func (h *Handler) runWizard(ctx context.Context, userID int64, actions ...domain.WizardAction) reply {
	var state domain.WizardState
	effect := domain.EffectNone

	for _, action := range actions {
		state, effect = h.dispatch(userID, action)
		if effect != domain.EffectNone {
			break
		}
	}

	switch effect {
	case domain.EffectValidationFailed:
		r := wizardReply(state)
		r.alert = textValidation
		return r

	case domain.EffectIgnored:
		if state.Submitted {
			return wizardReply(state)
		}
		// submission in flight
		return reply{}

	case domain.EffectSubmit:
		return h.submit(ctx, userID, state)
	}

	return wizardReply(state)
}

// submit sends the record and reports the outcome to the wizard
func (h *Handler) submit(ctx context.Context, userID int64, state domain.WizardState) reply {
	err := h.surveyService.Submit(ctx, userID, state.Record)

	seq := state.SubmitSeq
	state, effect := h.dispatch(userID, domain.SubmitDone{Seq: seq, Err: err})
	switch effect {
	case domain.EffectIgnored:
		// the survey was restarted while the request was out
		h.logger.Debug("Stale submission outcome dropped",
			zap.Int64("user_id", userID),
			zap.Int("seq", seq),
		)
		return reply{}
	case domain.EffectSubmitFailed:
		// failure is only logged; the user stays on the last question
		h.logger.Debug("Submission failed, wizard kept on last step",
			zap.Int64("user_id", userID),
			zap.Int("step", state.Step),
		)
		return reply{}
	}

	return wizardReply(state)
}

// answerText handles a typed answer for the current question
func (h *Handler) answerText(ctx context.Context, userID int64, text string) reply {
	state := h.GetWizard(userID)
	if state.Submitted || state.Pending {
		return h.runWizard(ctx, userID, domain.Next{})
	}

	field := state.CurrentField()
	if isChoice(field) {
		r := wizardReply(state)
		r.texts = append([]string{textUseButtons}, r.texts...)
		return r
	}

	return h.runWizard(ctx, userID,
		domain.UpdateField{Field: field, Value: text},
		domain.Next{},
	)
}

// answerChoice handles a choice button. A button from an earlier question only
// overwrites its field without advancing.
func (h *Handler) answerChoice(ctx context.Context, userID int64, field domain.Field, value string) reply {
	update := domain.UpdateField{Field: field, Value: value}

	if h.GetWizard(userID).CurrentField() != field {
		return h.runWizard(ctx, userID, update)
	}
	return h.runWizard(ctx, userID, update, domain.Next{})
}

// restart resets the wizard to the first question
func (h *Handler) restart(ctx context.Context, userID int64) reply {
	r := h.runWizard(ctx, userID, domain.Reset{})
	r.texts = append([]string{textGreeting}, r.texts...)
	return r
}

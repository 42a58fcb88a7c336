package domain

// Direction of the last navigation, used only for presentation
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// WizardState is the survey wizard state for one respondent
type WizardState struct {
	Step      int
	Direction Direction
	Submitted bool
	// Pending is set while the record is being sent
	Pending bool
	// SubmitSeq numbers submissions; it survives Reset so a late outcome
	// of an abandoned request never matches a new one
	SubmitSeq int
	Record    SurveyRecord
}

// NewWizardState returns a fresh wizard on the first question
func NewWizardState() WizardState {
	return WizardState{Step: 1, Direction: DirectionForward}
}

// CurrentField returns the field bound to the current step
func (s WizardState) CurrentField() Field {
	f, _ := FieldForStep(s.Step)
	return f
}

// WizardAction is one of Next, Back, UpdateField, Submit, SubmitDone, Reset
type WizardAction interface {
	wizardAction()
}

// Next advances to the next question, or submits on the last one
type Next struct{}

// Back returns to the previous question
type Back struct{}

// UpdateField overwrites a field without validation
type UpdateField struct {
	Field Field
	Value string
}

// Submit requests sending the record
type Submit struct{}

// SubmitDone reports the outcome of the submission numbered Seq
type SubmitDone struct {
	Seq int
	Err error
}

// Reset discards all answers and starts over
type Reset struct{}

func (Next) wizardAction()        {}
func (Back) wizardAction()        {}
func (UpdateField) wizardAction() {}
func (Submit) wizardAction()      {}
func (SubmitDone) wizardAction()  {}
func (Reset) wizardAction()       {}

// WizardEffect tells the caller what to do after a transition
type WizardEffect int

const (
	// EffectNone means the state changed and should be re-rendered
	EffectNone WizardEffect = iota
	// EffectIgnored means the action was not applicable and nothing changed
	EffectIgnored
	// EffectValidationFailed means the current question is unanswered
	EffectValidationFailed
	// EffectSubmit means the caller must send the record and report SubmitDone
	EffectSubmit
	// EffectSubmitted means the survey reached its terminal state
	EffectSubmitted
	// EffectSubmitFailed means the submission failed and the wizard stays on the last step
	EffectSubmitFailed
)

// Reduce applies an action to the wizard state
func Reduce(s WizardState, a WizardAction) (WizardState, WizardEffect) {
	if _, ok := a.(Reset); ok {
		fresh := NewWizardState()
		fresh.SubmitSeq = s.SubmitSeq
		return fresh, EffectNone
	}

	if s.Submitted {
		return s, EffectIgnored
	}

	if s.Pending {
		done, ok := a.(SubmitDone)
		if !ok || done.Seq != s.SubmitSeq {
			return s, EffectIgnored
		}
		s.Pending = false
		if done.Err != nil {
			return s, EffectSubmitFailed
		}
		s.Submitted = true
		return s, EffectSubmitted
	}

	switch act := a.(type) {
	case UpdateField:
		s.Record.Set(act.Field, act.Value)
		return s, EffectNone

	case Next:
		if !s.Record.Answered(s.CurrentField()) {
			return s, EffectValidationFailed
		}
		if s.Step == StepCount {
			return Reduce(s, Submit{})
		}
		s.Step++
		s.Direction = DirectionForward
		return s, EffectNone

	case Back:
		if s.Step <= 1 {
			return s, EffectIgnored
		}
		s.Step--
		s.Direction = DirectionBackward
		return s, EffectNone

	case Submit:
		if s.Step != StepCount {
			return s, EffectIgnored
		}
		if !s.Record.Answered(s.CurrentField()) {
			return s, EffectValidationFailed
		}
		s.Pending = true
		s.SubmitSeq++
		return s, EffectSubmit
	}

	// SubmitDone without a pending request
	return s, EffectIgnored
}

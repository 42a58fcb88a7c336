package domain

// AdminSession is the admin viewer state. The password lives only in memory.
type AdminSession struct {
	Password      string
	Authenticated bool
	Pending       bool
	Loaded        bool
	Responses     []Response
}

// AdminAction is one of Login, LoginDone, LoadResponses
type AdminAction interface {
	adminAction()
}

// Login submits a password for authentication
type Login struct {
	Password string
}

// LoginDone reports the authentication outcome
type LoginDone struct {
	Err error
}

// LoadResponses delivers the listing result
type LoadResponses struct {
	Responses []Response
	Err       error
}

func (Login) adminAction()         {}
func (LoginDone) adminAction()     {}
func (LoadResponses) adminAction() {}

// AdminEffect tells the caller what to do after a transition
type AdminEffect int

const (
	AdminEffectIgnored AdminEffect = iota
	// AdminEffectAuthenticate means the caller must check the password and report LoginDone
	AdminEffectAuthenticate
	// AdminEffectInvalidPassword means the password was rejected
	AdminEffectInvalidPassword
	// AdminEffectList means the caller must request the list and report LoadResponses
	AdminEffectList
	// AdminEffectRender means the responses are ready to be shown
	AdminEffectRender
)

// ReduceAdmin applies an action to the admin session
func ReduceAdmin(s AdminSession, a AdminAction) (AdminSession, AdminEffect) {
	switch act := a.(type) {
	case Login:
		if s.Pending || s.Authenticated {
			return s, AdminEffectIgnored
		}
		s.Password = act.Password
		s.Pending = true
		return s, AdminEffectAuthenticate

	case LoginDone:
		if !s.Pending || s.Authenticated {
			return s, AdminEffectIgnored
		}
		s.Pending = false
		if act.Err != nil {
			s.Password = ""
			return s, AdminEffectInvalidPassword
		}
		s.Authenticated = true
		return s, AdminEffectList

	case LoadResponses:
		if !s.Authenticated {
			return s, AdminEffectIgnored
		}
		s.Responses = act.Responses
		if act.Err != nil || s.Responses == nil {
			s.Responses = []Response{}
		}
		s.Loaded = true
		return s, AdminEffectRender
	}

	return s, AdminEffectIgnored
}

package services

import "oneearth/models"

// Decision is the outcome of the route guard.
type Decision int

const (
	DecisionLoading Decision = iota
	DecisionAllow
	DecisionRedirectLogin
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectHome:
		return "redirect_home"
	}
	return "unknown"
}

// SessionState is what the guard knows about the caller. Established is false until the
// session slot has been read.
type SessionState struct {
	Established bool
	User        *models.User
}

// Authorize decides whether a caller may reach a route. An empty required role admits any
// authenticated user.
func Authorize(state SessionState, required models.Role) Decision {
	if !state.Established {
		return DecisionLoading
	}
	if state.User == nil {
		return DecisionRedirectLogin
	}
	if required != "" && state.User.Role != required {
		return DecisionRedirectHome
	}
	return DecisionAllow
}

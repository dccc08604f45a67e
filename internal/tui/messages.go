package tui

import (
	"github.com/MKhiriev/go-pass-vault/models"
)

// page names registered in the root model
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageVault    = "vault"
	pageForm     = "form"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// NoticeMsg shows a one-line status on the page that receives it.
type NoticeMsg struct {
	Text string
}

type authResultMsg struct {
	user models.User
	err  error
}

type listLoadedMsg struct {
	items []models.Credential
	err   error
}

type revealDoneMsg struct {
	id  int64
	err error
}

type copyDoneMsg struct {
	site string
	err  error
}

type deleteDoneMsg struct {
	site string
	err  error
}

type logoutDoneMsg struct {
	err error
}

// openFormMsg opens the credential form. A nil existing record means create.
type openFormMsg struct {
	existing *models.Credential
}

type savedMsg struct {
	credential models.Credential
	edited     bool
	err        error
}

// keyPromptMsg asks the root model to show the master key prompt. The answer
// goes to reply exactly once.
type keyPromptMsg struct {
	reply chan<- keyPromptReply
}

type keyPromptReply struct {
	key string
	err error
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/fatih/color"
	"go.uber.org/mock/gomock"
)

func init() {
	// assertions compare plain text
	color.NoColor = true
}

type fakeSession struct {
	loggedIn   bool
	restoreErr error
	tuiCalls   int
	tuiLogged  bool
}

func (s *fakeSession) Restore(context.Context) (bool, error) {
	return s.loggedIn, s.restoreErr
}

func (s *fakeSession) RunTUI(_ context.Context, loggedIn bool) error {
	s.tuiCalls++
	s.tuiLogged = loggedIn
	return nil
}

// fakeSecrets answers prompts from a script.
type fakeSecrets struct {
	answers []string
	keys    []string
	asked   []string
}

func (f *fakeSecrets) ReadSecret(prompt string) (string, error) {
	f.asked = append(f.asked, prompt)
	if len(f.answers) == 0 {
		return "", errors.New("unexpected prompt: " + prompt)
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

func (f *fakeSecrets) PromptKey(context.Context) (string, error) {
	if len(f.keys) == 0 {
		return "", errors.New("unexpected key prompt")
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

type cliMocks struct {
	auth    *mock.MockClientAuthService
	vault   *mock.MockVaultService
	keys    *mock.MockKeyHolder
	secrets *fakeSecrets
	session *fakeSession
	stdin   string
}

func newCLIMocks(ctrl *gomock.Controller, loggedIn bool) *cliMocks {
	m := &cliMocks{
		auth:    mock.NewMockClientAuthService(ctrl),
		vault:   mock.NewMockVaultService(ctrl),
		keys:    mock.NewMockKeyHolder(ctrl),
		secrets: &fakeSecrets{},
		session: &fakeSession{loggedIn: loggedIn},
	}
	m.vault.EXPECT().SetPrompter(gomock.Any()).AnyTimes()
	m.vault.EXPECT().Evaluate(gomock.Any()).DoAndReturn(strength.Evaluate).AnyTimes()
	return m
}

// run executes args against a fresh command tree.
func (m *cliMocks) run(args ...string) (stdout, stderr string, err error) {
	root := NewRootCommand(Deps{
		Session:      m.session,
		Auth:         m.auth,
		Vault:        m.vault,
		Keys:         m.keys,
		Secrets:      m.secrets,
		ClipboardTTL: 10 * time.Millisecond,
		BuildInfo:    models.NewAppBuildInfo("1.0.0", "", ""),
		Logger:       logger.Nop(),
	})

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(m.stdin))
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

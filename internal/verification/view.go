package verification

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/mohiniBalmiki/taxwise-web/internal/authapi"
	"github.com/mohiniBalmiki/taxwise-web/internal/model"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/timeutil"
	"github.com/mohiniBalmiki/taxwise-web/internal/session"
)

type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "loading"
	}
}

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

const (
	MsgInvalidLink   = "Invalid verification link. Please try again or request a new verification email."
	MsgVerifyFailed  = "Email verification failed. Please try again."
	MsgVerified      = "Email verified successfully! Your account is now active."
	MsgResendSent    = "Verification email sent! Please check your inbox."
	MsgResendFailed  = "Failed to resend verification email. Please try again later."
	MsgResendNoEmail = "No email address found. Please register again."
	MsgResendTooSoon = "A verification email was sent recently. Please wait a moment before requesting another."
)

// fallback lifetime for stored sessions whose payload carries no expires_at
const defaultSessionLifetime = 24 * time.Hour

type BackendClient interface {
	ConfirmEmail(ctx context.Context, tokenHash, verificationType string) (*authapi.ConfirmEmailResult, error)
	ResendVerification(ctx context.Context, email string) (*authapi.ResendResult, error)
}

type Navigator interface {
	NavigateTo(route string)
}

type Notifier interface {
	Notify(level, message string)
}

// State is a tagged snapshot of the view: Message is set on Error,
// SessionID/Session on Success.
type State struct {
	Status    Status
	Message   string
	SessionID string
	Session   json.RawMessage
}

type Deps struct {
	Client    BackendClient
	Sessions  session.Store
	Navigator Navigator
	Notifier  Notifier
	Cooldown  *Cooldown

	HomeRoute      string
	DashboardRoute string
	RedirectDelay  time.Duration
}

// View drives the post-signup email verification callback screen. It mounts
// over the URL query parameters of the verification link, performs at most
// one confirm-email call, and on success persists the returned session and
// schedules a deferred navigation to the dashboard. The scheduled navigation
// is tied to the view lifetime: Close cancels it.
type View struct {
	deps   Deps
	params url.Values

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	closed bool
}

func NewView(deps Deps, params url.Values) *View {
	if deps.HomeRoute == "" {
		deps.HomeRoute = "/"
	}
	if deps.DashboardRoute == "" {
		deps.DashboardRoute = "/dashboard"
	}
	if deps.RedirectDelay <= 0 {
		deps.RedirectDelay = 2 * time.Second
	}
	if params == nil {
		params = url.Values{}
	}
	return &View{
		deps:   deps,
		params: params,
		state:  State{Status: StatusLoading},
	}
}

// RedirectDelay reports the effective post-success navigation delay after
// defaulting, so hosts surface the same value the view schedules with.
func (v *View) RedirectDelay() time.Duration {
	return v.deps.RedirectDelay
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Mount runs the primary verification flow once and returns the resulting
// state. The provider appends error/error_description to the callback URL
// when the link itself is bad; that case and missing parameters resolve
// locally without touching the backend.
func (v *View) Mount(ctx context.Context) State {
	if errParam := v.params.Get("error"); errParam != "" {
		msg := v.params.Get("error_description")
		if msg == "" {
			msg = errParam
		}
		return v.setError(msg)
	}
	tokenHash := v.params.Get("token_hash")
	verificationType := v.params.Get("type")
	if tokenHash == "" || verificationType == "" {
		return v.setError(MsgInvalidLink)
	}

	result, err := v.deps.Client.ConfirmEmail(ctx, tokenHash, verificationType)
	if err != nil {
		logutil.GetLogger(ctx).Error("confirm email call failed", zap.Error(err))
		return v.setError(MsgVerifyFailed)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = MsgVerifyFailed
		}
		return v.setError(msg)
	}

	state := State{Status: StatusSuccess, Session: result.Session}
	if len(result.Session) > 0 {
		sess := v.buildSession(result)
		if err := v.deps.Sessions.Set(ctx, sess); err != nil {
			logutil.GetLogger(ctx).Error("persist session failed", zap.Error(err))
		} else {
			state.SessionID = sess.ID
		}
	}

	v.mu.Lock()
	v.state = state
	if !v.closed {
		v.timer = time.AfterFunc(v.deps.RedirectDelay, v.redirectToDashboard)
	}
	v.mu.Unlock()

	msg := result.Message
	if msg == "" {
		msg = MsgVerified
	}
	v.deps.Notifier.Notify(LevelSuccess, msg)
	return state
}

// Resend re-requests the verification email for the address in the callback
// URL. It never changes the view status.
func (v *View) Resend(ctx context.Context) {
	email := v.params.Get("email")
	if email == "" {
		v.deps.Notifier.Notify(LevelError, MsgResendNoEmail)
		v.deps.Navigator.NavigateTo(v.deps.HomeRoute)
		return
	}
	if !v.deps.Cooldown.Allow(email) {
		v.deps.Notifier.Notify(LevelError, MsgResendTooSoon)
		return
	}
	result, err := v.deps.Client.ResendVerification(ctx, email)
	if err != nil {
		logutil.GetLogger(ctx).Error("resend verification call failed", zap.Error(err))
		v.deps.Notifier.Notify(LevelError, MsgResendFailed)
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = MsgResendFailed
		}
		v.deps.Notifier.Notify(LevelError, msg)
		return
	}
	msg := result.Message
	if msg == "" {
		msg = MsgResendSent
	}
	v.deps.Notifier.Notify(LevelSuccess, msg)
}

func (v *View) GoHome() {
	v.deps.Navigator.NavigateTo(v.deps.HomeRoute)
}

// Close cancels any pending deferred navigation. Navigating on behalf of a
// torn-down view is never correct, so hosts must call Close when the view
// leaves the screen.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

func (v *View) setError(message string) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = State{Status: StatusError, Message: message}
	return v.state
}

func (v *View) redirectToDashboard() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.timer = nil
	v.mu.Unlock()
	v.deps.Navigator.NavigateTo(v.deps.DashboardRoute)
}

func (v *View) buildSession(result *authapi.ConfirmEmailResult) *model.Session {
	email := v.params.Get("email")
	if result.User != nil && result.User.Email != "" {
		email = result.User.Email
	}
	now := timeutil.NowUnix()
	expiresAt := now + int64(defaultSessionLifetime/time.Second)
	var hint struct {
		ExpiresAt int64 `json:"expires_at"`
	}
	// the payload is opaque; expires_at is read only as a housekeeping hint
	if err := json.Unmarshal(result.Session, &hint); err == nil && hint.ExpiresAt > 0 {
		expiresAt = hint.ExpiresAt
	}
	return &model.Session{
		ID:        newSessionID(),
		Email:     email,
		Payload:   result.Session,
		Ctime:     now,
		ExpiresAt: expiresAt,
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}

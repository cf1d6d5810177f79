package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohiniBalmiki/taxwise-web/internal/config"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/jwt"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/response"
	"github.com/mohiniBalmiki/taxwise-web/internal/session"
	"github.com/mohiniBalmiki/taxwise-web/internal/verification"
)

const handoffCookieName = "tw_handoff"

type VerifyHandler struct {
	client     verification.BackendClient
	sessions   session.Store
	cooldown   *verification.Cooldown
	routes     config.RoutesConfig
	delay      time.Duration
	jwtSecret  []byte
	handoffTTL time.Duration
}

func NewVerifyHandler(
	client verification.BackendClient,
	sessions session.Store,
	cooldown *verification.Cooldown,
	routes config.RoutesConfig,
	delay time.Duration,
	jwtSecret []byte,
	handoffTTL time.Duration,
) *VerifyHandler {
	return &VerifyHandler{
		client:     client,
		sessions:   sessions,
		cooldown:   cooldown,
		routes:     routes,
		delay:      delay,
		jwtSecret:  jwtSecret,
		handoffTTL: handoffTTL,
	}
}

// newView builds a request-scoped verification view over the callback URL's
// query parameters. Navigation and notifications are captured into the
// recorders and returned to the browser as directives instead of happening
// server side.
func (h *VerifyHandler) newView(c *gin.Context) (*verification.View, *routeRecorder, *noteRecorder) {
	nav := &routeRecorder{}
	notes := &noteRecorder{}
	view := verification.NewView(verification.Deps{
		Client:         h.client,
		Sessions:       h.sessions,
		Navigator:      nav,
		Notifier:       notes,
		Cooldown:       h.cooldown,
		HomeRoute:      h.routes.Home,
		DashboardRoute: h.routes.Dashboard,
		RedirectDelay:  h.delay,
	}, c.Request.URL.Query())
	return view, nav, notes
}

// Show mounts the email verification view for the current callback URL.
func (h *VerifyHandler) Show(c *gin.Context) {
	view, _, notes := h.newView(c)
	defer view.Close()

	state := view.Mount(c.Request.Context())
	resp := gin.H{"status": state.Status.String()}
	if state.Message != "" {
		resp["message"] = state.Message
	}
	if n := notes.last(); n != nil {
		resp["notification"] = n
	}
	if state.Status == verification.StatusSuccess {
		resp["redirect"] = gin.H{
			"to":       h.routes.Dashboard,
			"after_ms": view.RedirectDelay().Milliseconds(),
		}
		h.setHandoffCookie(c, state)
	}
	response.Success(c, resp)
}

// Resend re-requests the verification email for the address carried in the
// callback URL.
func (h *VerifyHandler) Resend(c *gin.Context) {
	view, nav, notes := h.newView(c)
	defer view.Close()

	view.Resend(c.Request.Context())
	resp := gin.H{}
	if n := notes.last(); n != nil {
		resp["notification"] = n
	}
	if target := nav.target(); target != "" {
		resp["redirect"] = gin.H{"to": target, "after_ms": 0}
	}
	response.Success(c, resp)
}

func (h *VerifyHandler) setHandoffCookie(c *gin.Context, state verification.State) {
	if state.SessionID == "" || len(h.jwtSecret) == 0 {
		return
	}
	email := c.Request.URL.Query().Get("email")
	token, err := jwt.GenerateHandoff(state.SessionID, email, h.jwtSecret, h.handoffTTL)
	if err != nil {
		return
	}
	c.SetCookie(handoffCookieName, token, int(h.handoffTTL/time.Second), "/", "", false, true)
}

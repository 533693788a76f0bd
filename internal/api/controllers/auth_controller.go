package controllers

import (
	"net/http"
	"net/url"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecoquest/internal/api/stream"
	"ecoquest/internal/config"
	"ecoquest/internal/models/request_models"
	"ecoquest/internal/services"
	"ecoquest/internal/session"
	"ecoquest/pkg/middleware"
	"ecoquest/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	sessions    *session.Cache
	accept      *ws.AcceptOptions
	log         *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, sessions *session.Cache, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		accept:      acceptOptions(cfg.Server.CORSOrigins),
		log:         log,
	}
}

// acceptOptions turns CORS origins into websocket origin host patterns.
func acceptOptions(origins []string) *ws.AcceptOptions {
	opts := &ws.AcceptOptions{}
	for _, o := range origins {
		if o == "*" {
			opts.InsecureSkipVerify = true
			return opts
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			opts.OriginPatterns = append(opts.OriginPatterns, u.Host)
		}
	}
	return opts
}

// Login godoc
// @Summary Sign in to the admin console
// @Description Authenticate an admin or super admin and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// malformed credentials get the same answer as wrong ones
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgInvalidCredentials)
		return
	}

	out, err := a.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Login successful")
}

// Logout godoc
// @Summary Sign out
// @Description Revoke the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	if err := a.authService.SignOut(c.Request.Context(), s); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logout successful")
}

// Me godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, s, "")
}

// SessionStream upgrades to a websocket that reports session changes of the
// caller's account. Pass the token as the access_token query parameter.
func (a *AuthController) SessionStream(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	conn, err := ws.Accept(c.Writer, c.Request, a.accept)
	if err != nil {
		a.log.Warn("session stream: accept", zap.Error(err))
		return
	}

	stream.NewClient(conn, a.sessions, s, a.log).Run(c.Request.Context())
}

func requireSession(c *gin.Context) (session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
	}
	return s, ok
}

package auth

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	refreshCookie = "refresh_token"
	frameMessage  = "authorization_response"
)

// frameTemplate posts the sign-in outcome to the window that opened the popup.
// html/template escapes the payload for the script context.
var frameTemplate = template.Must(template.New("frame").Parse(`<!doctype html><html><body><script>
(function(){
  var msg = {type: {{.Type}}, response: {{.Response}}, error: {{.Error}}};
  try { if (window.opener) window.opener.postMessage(msg, {{.Origin}}); } finally { window.close(); }
})();
</script></body></html>`))

type frameData struct {
	Type     string
	Response *AuthHandlerResponse
	Error    *frameError
	Origin   string
}

type frameError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) renderFrame(c *gin.Context, resp *AuthHandlerResponse, ferr *frameError) {
	origin := h.service.FrontendURL()
	if origin == "" {
		origin = "*"
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := frameTemplate.Execute(c.Writer, frameData{Type: frameMessage, Response: resp, Error: ferr, Origin: origin}); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to render auth frame")
	}
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth authentication
// @Description Redirects to the identity provider's authorization page
// @Tags authentication
// @Param provider path string true "OAuth provider" default(github)
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")
	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// @Summary Handle OAuth callback
// @Description Completes sign-in and posts the tokens to the opener window
// @Tags authentication
// @Produce text/html
// @Param provider path string true "OAuth provider"
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")

	if errorParam := c.Query("error"); errorParam != "" {
		msg := errorParam
		if desc := c.Query("error_description"); desc != "" {
			msg += ": " + desc
		}
		h.renderFrame(c, nil, &frameError{Name: "OAuthError", Message: msg})
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}

	resp, err := h.service.HandleCallback(c.Request.Context(), provider, code, state)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Sign-in failed")
		h.renderFrame(c, nil, &frameError{Name: "Error", Message: err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, resp.RefreshToken, int(refreshTokenTTL.Seconds()), "/api/auth", "", c.Request.TLS != nil, true)
	h.renderFrame(c, resp, nil)
}

func refreshTokenFrom(c *gin.Context) string {
	var req RefreshTokenRequest
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&req)
	}
	if token := strings.TrimSpace(req.RefreshToken); token != "" {
		return token
	}
	if cookie, err := c.Cookie(refreshCookie); err == nil {
		return cookie
	}
	return ""
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh authentication token
// @Description Exchanges a refresh token (body or cookie) for a new access token; the refresh token is rotated
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token"
// @Success 200 {object} AuthHandlerResponse
// @Failure 401 {object} map[string]interface{} "Refresh token missing, invalid or expired"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := refreshTokenFrom(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "details": "No refresh token provided"})
		return
	}

	refreshed, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, refreshed.RefreshToken, int(refreshTokenTTL.Seconds()), "/api/auth", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, refreshed)
}

// Logout handles POST /api/auth/logout
// @Summary Logout user
// @Description Revokes the refresh token and clears the session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token"
// @Success 200 {object} AuthLogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(refreshTokenFrom(c))
	c.SetCookie(refreshCookie, "", -1, "/api/auth", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/handlers"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/routes"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/HAKEEM243/Masambukidi/internal/store/memory"
	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-admin-token"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AdminToken:    testToken,
		AdminUsername: "admin",
		AdminPassword: "motdepasse",
		StorageDriver: "memory",
		CORSOrigins:   "*",
	}

	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	stores := memory.New()
	require.NoError(t, services.SeedProfiles(stores.Profiles))

	refs := refcode.New(mock)
	authService, err := services.NewAuthService(cfg)
	require.NoError(t, err)

	h := &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Reports:   handlers.NewReportHandler(services.NewReportService(stores, refs, mock)),
		Whitelist: handlers.NewWhitelistHandler(services.NewWhitelistService(stores.Authorized, refs, mock)),
		Perms:     handlers.NewPermissionHandler(services.NewPermissionService(stores.Permissions, refs, mock)),
		Legal:     handlers.NewLegalHandler(services.NewLegalService(stores.LegalCases, stores.Reports, refs, mock), mock),
		Alerts:    handlers.NewAlertHandler(services.NewAlertService(stores.Alerts, stores.Subscribers, mock)),
		Analysis:  handlers.NewAnalysisHandler(services.NewAnalysisService()),
		Profiles:  handlers.NewProfileHandler(services.NewProfileService(stores.Profiles)),
		Health:    handlers.NewHealthHandler(cfg, mock),
	}

	app := fiber.New()
	routes.Setup(app, cfg, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func TestSubmitAndTrackReport(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/report/submit", "", map[string]string{
		"url":            "https://youtube.com/watch?v=abc",
		"platform":       "youtube",
		"abuse_type":     "identity_theft",
		"description":    "Usurpation du nom",
		"reporter_email": "temoin@example.com",
		"reporter_name":  "Témoin",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	ref, _ := body["ref_number"].(string)
	assert.Regexp(t, `^SIG-20260314-\d{4}$`, ref)
	assert.Equal(t, "/verifier?ref="+ref, body["tracking_url"])

	status, body = doJSON(t, app, http.MethodGet, "/api/report/status/"+ref, "", nil)
	require.Equal(t, http.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "En attente de traitement", data["status_label"])
}

func TestSubmitReportMissingFields(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/report/submit", "", map[string]string{
		"url": "https://x.com/post/1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Champs obligatoires manquants", body["error"])
}

func TestUnknownReference(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/report/status/SIG-20260314-0000", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Signalement introuvable", body["error"])
}

func TestAdminGate(t *testing.T) {
	app := newTestApp(t)

	// No token
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/whitelist/add", "", map[string]string{
		"url": "https://youtube.com/official",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Non autorisé", body["error"])

	// Wrong token
	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/reports", "mauvais-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// The refused add must not have created anything.
	status, body = doJSON(t, app, http.MethodGet, "/api/authorized/list", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])

	// Valid bearer token
	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/reports", testToken, nil)
	assert.Equal(t, http.StatusOK, status)

	// Query-parameter fallback
	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/reports?token="+testToken, "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestVerifyContentFlow(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/whitelist/add", testToken, map[string]string{
		"url":              "https://youtube.com/official",
		"beneficiary_name": "Chaîne officielle",
		"content_type":     "video",
	})
	require.Equal(t, http.StatusOK, status)
	cert, _ := body["cert_number"].(string)
	assert.Regexp(t, `^CERT-20260314-\d{4}$`, cert)

	status, body = doJSON(t, app, http.MethodPost, "/api/verify/content", "", map[string]string{
		"url": "https://youtube.com/official",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["is_authorized"])
	certificate, ok := body["certificate"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, cert, certificate["number"])

	status, body = doJSON(t, app, http.MethodPost, "/api/verify/content", "", map[string]string{
		"url": "https://youtube.com/unofficial",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["is_authorized"])
	assert.Equal(t, "/signaler", body["report_url"])
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, testToken, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "superadmin", user["role"])

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "faux",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Identifiants incorrects", body["error"])
}

func TestLegalCaseDocument(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/report/submit", "", map[string]string{
		"url":            "https://tiktok.com/@fake/video/9",
		"platform":       "tiktok",
		"abuse_type":     "fraud",
		"description":    "Faux compte",
		"reporter_email": "temoin@example.com",
	})
	ref, _ := body["ref_number"].(string)
	require.NotEmpty(t, ref)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/legal-case/create", testToken, map[string]any{
		"report_id":     1,
		"offender_name": "Compte Anonyme",
	})
	require.Equal(t, http.StatusOK, status)
	caseNumber, _ := body["case_number"].(string)
	assert.Regexp(t, `^JUR-20260314-\d{4}$`, caseNumber)

	status, body = doJSON(t, app, http.MethodPut, "/api/admin/legal-case/1/sign", testToken, map[string]string{})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Document signé", body["message"])

	status, body = doJSON(t, app, http.MethodPut, "/api/admin/legal-case/1/sign", testToken, map[string]string{})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Document déjà signé", body["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/admin/legal-case/1/html", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(raw)
	assert.Contains(t, html, caseNumber)
	assert.Contains(t, html, "DOCUMENT SIGNÉ ÉLECTRONIQUEMENT")
}

func TestProfileLookup(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/user/profile/1", "", nil)
	require.Equal(t, http.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sarah Masambukidi", data["full_name"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/user/profile?user_id=2", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/user/profile?user_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Identifiant utilisateur invalide", body["error"])

	status, body = doJSON(t, app, http.MethodGet, "/api/user/profile/99", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Profil utilisateur introuvable", body["error"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/ai/analyze", "", map[string]string{
		"content":      "contenu masambukidi en vente à 50€",
		"content_type": "text",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "local", body["powered_by"])
	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medium", analysis["risk_level"])
	assert.Equal(t, float64(5), analysis["risk_score"])

	// A malformed body reads as empty content.
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze", bytes.NewReader([]byte("pas du json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouteNotFound(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/inconnu", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route non trouvée", body["error"])
	assert.Equal(t, "/api/inconnu", body["path"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "operational", body["status"])
	assert.Equal(t, "memory", body["storage"])
}

func TestSubscribeEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/alerts/subscribe", "", map[string]string{
		"email": "fan@example.com",
		"name":  "Fan",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Abonnement activé.", body["message"])

	status, body = doJSON(t, app, http.MethodPost, "/api/alerts/subscribe", "", map[string]string{
		"email": "pas-un-email",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email invalide", body["error"])

	status, body = doJSON(t, app, http.MethodGet, "/api/alerts/subscribers", testToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doJSON(t, app, http.MethodPost, "/api/alerts/broadcast", testToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["sent"])
	assert.Equal(t, float64(1), body["total"])
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		status, _ := doJSON(t, app, http.MethodPost, "/api/report/submit", "", map[string]string{
			"url":            fmt.Sprintf("https://x.com/post/%d", i),
			"platform":       "x",
			"abuse_type":     "other",
			"description":    "d",
			"reporter_email": "a@b.co",
		})
		require.Equal(t, http.StatusOK, status)
	}

	resolved := "resolved"
	status, _ := doJSON(t, app, http.MethodPut, "/api/admin/report/1/process", testToken, map[string]any{
		"status": resolved,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/admin/dashboard-stats", testToken, nil)
	require.Equal(t, http.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total_reports"])
	assert.Equal(t, float64(2), data["pending_reports"])
	assert.Equal(t, float64(1), data["resolved_reports"])

	status, body = doJSON(t, app, http.MethodGet, "/api/reports/stats", "", nil)
	require.Equal(t, http.StatusOK, status)
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(33), stats["success_rate"])
}

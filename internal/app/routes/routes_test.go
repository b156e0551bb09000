package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/backend/internal/app/controllers"
	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/app/services"
	"github.com/alumnet/backend/internal/middleware"
	"github.com/alumnet/backend/internal/pkg/auth"
	"github.com/alumnet/backend/internal/pkg/payment"
	"github.com/alumnet/backend/internal/testutil"
)

const (
	testSecret      = "router-test-secret"
	testUploadLimit = 1 << 20
)

type testApp struct {
	router    *gin.Engine
	jwt       *auth.JWTService
	users     *testutil.UserStore
	donations *testutil.DonationStore
	storage   *testutil.Storage
	email     *testutil.Email
	gateway   *testutil.Gateway
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := &testApp{
		jwt:     auth.NewJWTService(auth.JWTConfig{SecretKey: testSecret, TokenExp: 7 * 24 * time.Hour, TokenIssuer: "alumnet"}),
		users:   testutil.NewUserStore(),
		storage: &testutil.Storage{},
		email:   &testutil.Email{},
		gateway: testutil.NewGateway(),
	}
	app.donations = testutil.NewDonationStore(app.users)
	lgr := zerolog.Nop()

	c := Controllers{
		Auth: controllers.NewAuthController(services.NewAuthService(app.users, app.jwt, lgr), lgr),
		User: controllers.NewUserController(
			services.NewUserService(app.users, app.storage, app.email, time.Second, lgr), lgr),
		Event:       controllers.NewEventController(services.NewEventService(testutil.NewEventStore(app.users)), lgr),
		News:        controllers.NewNewsController(services.NewNewsService(testutil.NewNewsStore(app.users)), lgr),
		Forum:       controllers.NewForumController(services.NewForumService(testutil.NewForumStore(app.users)), lgr),
		Gallery:     controllers.NewGalleryController(services.NewGalleryService(testutil.NewGalleryStore(app.users), app.storage), lgr),
		BoardMinute: controllers.NewBoardMinuteController(services.NewBoardMinuteService(testutil.NewBoardMinuteStore(), app.storage), lgr),
		Donation: controllers.NewDonationController(
			services.NewDonationService(app.donations, app.users, app.gateway, "https://example.com/verify", lgr), lgr),
		Health: controllers.NewHealthController(nil, lgr),
	}

	app.router = gin.New()
	app.router.Use(middleware.RequestID(), middleware.Recovery(), middleware.BodyLimit(testUploadLimit))
	SetupRouter(app.router, c, middleware.NewAuthMiddleware(app.jwt, app.users))
	return app
}

func (a *testApp) user(t *testing.T, email string, approved bool, role models.Role) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	u := a.users.Put(&models.User{
		Email: email, Password: hash, Name: "Name " + email, GraduationYear: 2010,
		Location: "Lagos", IsApproved: approved, Role: role,
	})
	token, _, err := a.jwt.GenerateToken(u.ID, string(role))
	require.NoError(t, err)
	return u, token
}

func (a *testApp) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) multipart(t *testing.T, method, path, token string, fields map[string]string, fileField, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	decode(t, w, &body)
	msg, _ := body["msg"].(string)
	return msg
}

func TestSignupLoginApprovalFlow(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := app.user(t, "admin@example.com", true, models.RoleAdmin)

	signup := map[string]interface{}{"email": "ada@example.com", "password": "s3cret!", "name": "Ada", "graduationYear": 2012}
	w := app.do(http.MethodPost, "/api/auth/signup", "", signup)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(http.MethodPost, "/api/auth/signup", "", signup)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", msgOf(t, w))
	assert.Equal(t, 2, app.users.Count())

	login := map[string]string{"email": "ada@example.com", "password": "s3cret!"}
	w = app.do(http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Account pending approval", msgOf(t, w))
	assert.NotContains(t, w.Body.String(), "token")

	w = app.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ada@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", msgOf(t, w))

	ada, err := app.users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)

	w = app.do(http.MethodPut, "/api/admin/users/"+ada.ID, adminToken, map[string]bool{"isApproved": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var approval struct {
		User      map[string]interface{} `json:"user"`
		EmailSent bool                   `json:"emailSent"`
	}
	decode(t, w, &approval)
	assert.True(t, approval.EmailSent)
	assert.Equal(t, true, approval.User["isApproved"])
	assert.NotContains(t, approval.User, "password")
	assert.Equal(t, 1, app.email.SentCount())

	w = app.do(http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var loginRes struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &loginRes)
	assert.Equal(t, ada.ID, loginRes.User.ID)

	w = app.do(http.MethodGet, "/api/profile", loginRes.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignupRejectsOutOfRangeYear(t *testing.T) {
	app := newTestApp(t)
	w := app.do(http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"email": "old@example.com", "password": "s3cret!", "name": "Old", "graduationYear": 1949,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, msgOf(t, w), "Graduation year must be between 1950")
	assert.Equal(t, 0, app.users.Count())
}

func TestSetApprovalUnknownUser(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := app.user(t, "admin@example.com", true, models.RoleAdmin)

	w := app.do(http.MethodPut, "/api/admin/users/missing", adminToken, map[string]bool{"isApproved": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodPut, "/api/admin/users/missing", adminToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthenticationErrors(t *testing.T) {
	app := newTestApp(t)
	u, token := app.user(t, "ada@example.com", true, models.RoleAlumni)

	w := app.do(http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", msgOf(t, w))

	w = app.do(http.MethodGet, "/api/profile", token+"x", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", msgOf(t, w))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    "alumnet",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	w = app.do(http.MethodGet, "/api/profile", expiredToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	_, alumniToken := app.user(t, "ada@example.com", true, models.RoleAlumni)

	requests := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPut, "/api/admin/users/someone"},
		{http.MethodGet, "/api/donations"},
		{http.MethodPost, "/api/news"},
		{http.MethodPost, "/api/board-minutes"},
	}
	for _, r := range requests {
		w := app.do(r.method, r.path, alumniToken, map[string]string{"title": "x", "content": "y"})
		assert.Equal(t, http.StatusForbidden, w.Code, r.path)
		assert.Equal(t, "Access denied", msgOf(t, w), r.path)

		w = app.do(r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, r.path)
	}
}

func TestAdminCheckUsesStoredRole(t *testing.T) {
	app := newTestApp(t)
	u, _ := app.user(t, "ada@example.com", true, models.RoleAlumni)
	// A token claiming admin does not override the stored role
	forged, _, err := app.jwt.GenerateToken(u.ID, string(models.RoleAdmin))
	require.NoError(t, err)

	w := app.do(http.MethodGet, "/api/admin/users", forged, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDirectoryHidesPasswordAndApproval(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)
	app.user(t, "bayo@example.com", true, models.RoleAlumni)
	app.user(t, "pending@example.com", false, models.RoleAlumni)

	for _, path := range []string{"/api/directory", "/api/directory?year=2010", "/api/directory?location=lag", "/api/directory?year=2010&location=LAGOS"} {
		w := app.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var entries []map[string]interface{}
		decode(t, w, &entries)
		assert.Len(t, entries, 2, path)
		for _, e := range entries {
			assert.NotContains(t, e, "password", path)
			assert.NotContains(t, e, "isApproved", path)
		}
	}

	w := app.do(http.MethodGet, "/api/directory?year=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileUpdateWithPicture(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)

	w := app.multipart(t, http.MethodPut, "/api/profile", token,
		map[string]string{"bio": "Engineer", "graduationYear": "2011"}, "profilePic", "me.png", []byte("png"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res map[string]interface{}
	decode(t, w, &res)
	assert.Equal(t, "https://cdn.example.com/profiles/me.png", res["profilePic"])
	assert.Equal(t, "Engineer", res["bio"])
	assert.EqualValues(t, 2011, res["graduationYear"])

	w = app.do(http.MethodPut, "/api/profile", token, map[string]string{"location": "Abuja"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	assert.Equal(t, "Abuja", res["location"])
	assert.Equal(t, "Engineer", res["bio"])
}

func TestForumReplies(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)

	w := app.do(http.MethodPost, "/api/forums", token, map[string]string{"title": "Reunion", "content": "Who is in?"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var thread models.ForumThread
	decode(t, w, &thread)

	for _, content := range []string{"first", "second"} {
		w = app.do(http.MethodPost, "/api/forums/"+thread.ID+"/reply", token, map[string]string{"content": content})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = app.do(http.MethodGet, "/api/forums/"+thread.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &thread)
	require.Len(t, thread.Replies, 2)
	assert.Equal(t, "first", thread.Replies[0].Content)
	assert.Equal(t, "second", thread.Replies[1].Content)

	w = app.do(http.MethodPost, "/api/forums/missing/reply", token, map[string]string{"content": "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodGet, "/api/forums", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicListsAndEventCreation(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)

	w := app.do(http.MethodPost, "/api/events", token, map[string]string{"title": "Gala", "date": "2026-12-05"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.Event
	decode(t, w, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Name ada@example.com", events[0].CreatorName)

	w = app.do(http.MethodPost, "/api/events", token, map[string]string{"date": "2026-12-05"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, path := range []string{"/api/news", "/api/gallery"} {
		w = app.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}

func TestGalleryUpload(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)

	w := app.multipart(t, http.MethodPost, "/api/gallery", token, map[string]string{"caption": "Party"}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Image is required", msgOf(t, w))

	w = app.multipart(t, http.MethodPost, "/api/gallery", token, map[string]string{"caption": "Party"}, "image", "party.jpg", []byte("jpg"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item models.GalleryItem
	decode(t, w, &item)
	assert.Equal(t, "https://cdn.example.com/gallery/party.jpg", item.URL)
}

func TestUploadsOverLimitAreRejected(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)
	big := bytes.Repeat([]byte("x"), 2*testUploadLimit)

	w := app.multipart(t, http.MethodPost, "/api/gallery", token, map[string]string{"caption": "Huge"}, "image", "huge.jpg", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "Request body exceeds 1 MB", msgOf(t, w))

	w = app.multipart(t, http.MethodPut, "/api/profile", token, map[string]string{"bio": "x"}, "profilePic", "huge.png", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, app.storage.Uploads)
}

func TestBoardMinutesPublish(t *testing.T) {
	app := newTestApp(t)
	_, adminToken := app.user(t, "admin@example.com", true, models.RoleAdmin)

	w := app.multipart(t, http.MethodPost, "/api/board-minutes", adminToken, nil, "file", "agm.pdf", []byte("%PDF-1.4"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title and file are required", msgOf(t, w))

	w = app.multipart(t, http.MethodPost, "/api/board-minutes", adminToken, map[string]string{"title": "AGM"}, "file", "agm.txt", []byte("text"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.multipart(t, http.MethodPost, "/api/board-minutes", adminToken, map[string]string{"title": "AGM"}, "file", "agm.pdf", []byte("%PDF-1.4"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(http.MethodGet, "/api/board-minutes", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var minutes []models.BoardMinute
	decode(t, w, &minutes)
	require.Len(t, minutes, 1)
	assert.Equal(t, "AGM", minutes[0].Title)
}

func TestDonationFlow(t *testing.T) {
	app := newTestApp(t)
	_, token := app.user(t, "ada@example.com", true, models.RoleAlumni)
	_, adminToken := app.user(t, "admin@example.com", true, models.RoleAdmin)

	for _, amount := range []float64{0, -10} {
		w := app.do(http.MethodPost, "/api/donations/create-payment", token, map[string]interface{}{"amount": amount, "currency": "usd"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Equal(t, 0, app.gateway.InitializeCalls())

	w := app.do(http.MethodPost, "/api/donations/create-payment", token, map[string]interface{}{"amount": 100, "currency": "usd"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	}
	decode(t, w, &created)
	assert.Equal(t, app.gateway.AuthURL, created.AuthorizationURL)
	require.Len(t, app.gateway.Initialized, 1)
	assert.Equal(t, "USD", app.gateway.Initialized[0].Currency)
	assert.Equal(t, int64(10000), app.gateway.Initialized[0].AmountMinor)

	// Gateway has not settled the payment
	w = app.do(http.MethodGet, "/api/donations/verify/"+created.Reference, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Payment verification failed"}`, w.Body.String())
	assert.Equal(t, 0, app.donations.Count())

	app.gateway.VerifyResults[created.Reference] = &payment.VerifyResult{
		Status: payment.StatusSuccess, AmountMinor: 10000, Currency: "USD", Reference: created.Reference,
	}
	for i := 0; i < 2; i++ {
		w = app.do(http.MethodGet, "/api/donations/verify/"+created.Reference, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Payment verified successfully"}`, w.Body.String())
	}
	assert.Equal(t, 1, app.donations.Count())

	w = app.do(http.MethodGet, "/api/donations", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var donations []map[string]interface{}
	decode(t, w, &donations)
	require.Len(t, donations, 1)
	assert.EqualValues(t, 100, donations[0]["amount"])
	assert.Equal(t, "USD", donations[0]["currency"])
	assert.Equal(t, "Name ada@example.com", donations[0]["donorName"])
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/alumni-of-the-month", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", msgOf(t, w))
}

func TestAdminCheckForDeletedUser(t *testing.T) {
	app := newTestApp(t)
	// Valid signature, but the account no longer exists
	token, _, err := app.jwt.GenerateToken("deleted-user", string(models.RoleAdmin))
	require.NoError(t, err)

	w := app.do(http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied", msgOf(t, w))
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

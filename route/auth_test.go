package route

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"archviz/config"
	"archviz/controller"
	"archviz/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := utils.HashPassword("letmein")
	require.NoError(t, err)
	return config.AuthConfig{Secret: testSecret, AdminPasswordHash: hash, TokenTTL: time.Hour}
}

func newGuardedAPI(t *testing.T, opts ...controller.Option) *testAPI {
	t.Helper()
	auth := authConfig(t)
	return newTestAPI(t, &config.Config{Auth: auth}, append([]controller.Option{controller.WithAuth(auth)}, opts...)...)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.SignedToken(testSecret, "admin", utils.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return token
}

func TestGuard_WritesNeedToken(t *testing.T) {
	api := newGuardedAPI(t)

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/projects", projectBody()},
		{http.MethodPut, "/api/projects/x", projectBody()},
		{http.MethodDelete, "/api/projects/x", nil},
		{http.MethodPost, "/api/blog", blogBody("x")},
		{http.MethodDelete, "/api/testimonials/x", nil},
		{http.MethodPut, "/api/settings", settingsBody("x")},
		{http.MethodGet, "/api/contacts", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := api.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = api.do(tt.method, tt.path, tt.body, "Authorization", "Bearer not-a-token")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGuard_ReadsStayOpen(t *testing.T) {
	api := newGuardedAPI(t)

	for _, path := range []string{"/", "/api/projects", "/api/projects/categories", "/api/blog", "/api/testimonials"} {
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, path, nil).Code, path)
	}
	contact := map[string]any{"name": "Test User", "email": "test@example.com", "message": "hello"}
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/contact", contact).Code)
}

func TestGuard_TokenAdmits(t *testing.T) {
	api := newGuardedAPI(t)
	token := adminToken(t)

	w := api.do(http.MethodPost, "/api/projects", projectBody(), "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/contacts", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_RejectsOtherRoles(t *testing.T) {
	api := newGuardedAPI(t)
	token, err := utils.SignedToken(testSecret, "visitor", "viewer", time.Hour)
	require.NoError(t, err)

	w := api.do(http.MethodGet, "/api/contacts", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin(t *testing.T) {
	api := newGuardedAPI(t)

	w := api.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "letmein"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	assert.EqualValues(t, 3600, resp["expires_in"])

	w = api.do(http.MethodDelete, "/api/projects/missing", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusNotFound, w.Code, "token accepted, then lookup fails")
}

func TestLogout_ExpiresCookie(t *testing.T) {
	api := newGuardedAPI(t)

	w := api.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "Bearer", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogin_DisabledWithoutAuth(t *testing.T) {
	api := newTestAPI(t, nil)
	w := api.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "letmein"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type fakeUploader struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.key, f.body, f.contentType = key, b, contentType
	return "https://cdn.example.com/" + key, nil
}

func uploadRequest(t *testing.T, field, filename, folder string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folder != "" {
		require.NoError(t, mw.WriteField("folder", folder))
	}
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	up := &fakeUploader{}
	api := newTestAPI(t, nil, controller.WithUploader(up))

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, "image", "My Render.png", "blog", []byte("png-bytes")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[map[string]string](t, w)
	assert.Equal(t, up.key, resp["key"])
	assert.Equal(t, "https://cdn.example.com/"+up.key, resp["url"])
	assert.Regexp(t, `^blog/[0-9a-f-]{36}-`, up.key)
	assert.Equal(t, []byte("png-bytes"), up.body)
}

func TestUpload_DefaultFolder(t *testing.T) {
	up := &fakeUploader{}
	api := newTestAPI(t, nil, controller.WithUploader(up))

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, "image", "a.jpg", "", []byte("x")))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^projects/`, up.key)
}

func TestUpload_MissingFile(t *testing.T) {
	api := newTestAPI(t, nil, controller.WithUploader(&fakeUploader{}))

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, "", "", "projects", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"image"`)
}

func TestUpload_StorageFailure(t *testing.T) {
	api := newTestAPI(t, nil, controller.WithUploader(&fakeUploader{err: errors.New("bucket unreachable")}))

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, "image", "a.jpg", "", []byte("x")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpload_DisabledWithoutUploader(t *testing.T) {
	api := newTestAPI(t, nil)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, "image", "a.jpg", "", []byte("x")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/baymax-health/internal/models"
	"github.com/BruksfildServices01/baymax-health/internal/storage"
)

type memoryAvatars struct {
	uploads map[uint][]byte
}

func (m *memoryAvatars) UploadAvatar(_ context.Context, userID uint, data []byte) (string, error) {
	if m.uploads == nil {
		m.uploads = map[uint][]byte{}
	}
	m.uploads[userID] = data
	return "https://cdn.example.com/" + storage.AvatarKey(userID, "fixed"), nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func upload(r http.Handler, filename string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", filename)
	_, _ = part.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func profileRouter(h *ProfileHandler, u *models.User) *gin.Engine {
	r := gin.New()
	r.Use(asUser(u))
	r.GET("/profile", h.Get)
	r.PUT("/profile", h.Update)
	r.POST("/profile/avatar", h.UploadAvatar)
	return r
}

func TestProfileAvatar_Upload(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)
	store := &memoryAvatars{}
	r := profileRouter(NewProfileHandler(gdb, store), ana)

	w := upload(r, "me.PNG", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	want := "https://cdn.example.com/avatars/" + itoa(ana.ID) + "/fixed.webp"
	assert.Equal(t, want, decode[map[string]string](t, w)["avatar_url"])
	assert.NotEmpty(t, store.uploads[ana.ID])

	var stored models.User
	require.NoError(t, gdb.First(&stored, ana.ID).Error)
	assert.Equal(t, want, stored.AvatarURL)
}

func TestProfileAvatar_Rejections(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)

	w := upload(profileRouter(NewProfileHandler(gdb, nil), ana), "me.png", pngBytes(t))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "avatar_storage_disabled", decode[errorBody](t, w).Code)

	r := profileRouter(NewProfileHandler(gdb, &memoryAvatars{}), ana)

	w = upload(r, "me.bmp", pngBytes(t))
	assert.Equal(t, "invalid_file_type", decode[errorBody](t, w).Code)

	w = upload(r, "me.png", []byte("not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_image", decode[errorBody](t, w).Code)
}

type profileBody struct {
	User struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestProfile_GetAndUpdate(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)
	r := profileRouter(NewProfileHandler(gdb, nil), ana)

	w := doJSON(r, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ana", decode[profileBody](t, w).User.Name)

	w = doJSON(r, http.MethodPut, "/profile", gin.H{"name": " Ana Maria ", "phone": "+55 11 5555"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[profileBody](t, w).User
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "+55 11 5555", got.Phone)
	assert.Equal(t, "ana@example.com", got.Email)

	// phone alone leaves the name untouched
	w = doJSON(r, http.MethodPut, "/profile", gin.H{"phone": ""})
	require.Equal(t, http.StatusOK, w.Code)
	var stored models.User
	require.NoError(t, gdb.First(&stored, ana.ID).Error)
	assert.Equal(t, "Ana Maria", stored.Name)
	assert.Empty(t, stored.Phone)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestProfile_UpdateRejections(t *testing.T) {
	gdb := newTestDB(t)
	ana := seedUser(t, gdb, "ana", models.RoleUser)
	r := profileRouter(NewProfileHandler(gdb, nil), ana)

	w := doJSON(r, http.MethodPut, "/profile", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_name", decode[errorBody](t, w).Code)

	w = doJSON(r, http.MethodPut, "/profile", gin.H{"phone": "012345678901234567890"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[errorBody](t, w).Code)

	var stored models.User
	require.NoError(t, gdb.First(&stored, ana.ID).Error)
	assert.Equal(t, "ana", stored.Name)
}

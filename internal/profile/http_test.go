package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticfolio/portfolio-backend/internal/profile/domain"
	"github.com/kineticfolio/portfolio-backend/internal/profile/repository"
	"github.com/kineticfolio/portfolio-backend/internal/uploads"
)

type stubUploader struct {
	url string
	err error
}

func (u *stubUploader) Upload(context.Context, uploads.File) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func newProfileRouter(store repository.ProfileStore, uploader uploads.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(store, uploader)
	api := router.Group("/api/v1")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return router
}

func getProfile(t *testing.T, router *gin.Engine) (int, domain.Profile) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp struct {
		Profile domain.Profile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr.Code, resp.Profile
}

func putProfile(t *testing.T, router *gin.Engine, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if withImage {
		part, err := w.CreateFormFile("image", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("avatar-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPut, "/api/v1/admin/profile", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestProfileGet(t *testing.T) {
	t.Run("never-saved profile comes back as empty defaults", func(t *testing.T) {
		router := newProfileRouter(repository.NewMemoryProfileRepository(), &stubUploader{})

		code, p := getProfile(t, router)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, p.Name)
		assert.NotNil(t, p.Skills)
		assert.Empty(t, p.Skills)
	})
}

func TestProfileSave(t *testing.T) {
	t.Run("saves and reads back", func(t *testing.T) {
		router := newProfileRouter(repository.NewMemoryProfileRepository(), &stubUploader{})

		rr := putProfile(t, router, map[string]string{
			"name":   "Ana Dev",
			"bio":    "I build things.",
			"skills": "Go, React, , Firebase",
		}, false)
		require.Equal(t, http.StatusOK, rr.Code)

		code, p := getProfile(t, router)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Ana Dev", p.Name)
		assert.Equal(t, "I build things.", p.Bio)
		assert.Equal(t, []string{"Go", "React", "Firebase"}, p.Skills)
		assert.NotEmpty(t, p.UpdatedAt)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		router := newProfileRouter(repository.NewMemoryProfileRepository(), &stubUploader{})

		rr := putProfile(t, router, map[string]string{
			"name": "Ana Dev",
			"bio":  "Original bio",
		}, false)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = putProfile(t, router, map[string]string{"bio": "Updated bio"}, false)
		require.Equal(t, http.StatusOK, rr.Code)

		_, p := getProfile(t, router)
		assert.Equal(t, "Ana Dev", p.Name)
		assert.Equal(t, "Updated bio", p.Bio)
	})

	t.Run("image upload sets the profile image", func(t *testing.T) {
		router := newProfileRouter(repository.NewMemoryProfileRepository(), &stubUploader{url: "https://img.example/avatar.png"})

		rr := putProfile(t, router, map[string]string{"name": "Ana"}, true)
		require.Equal(t, http.StatusOK, rr.Code)

		_, p := getProfile(t, router)
		assert.Equal(t, "https://img.example/avatar.png", p.ProfileImage)
	})

	t.Run("upload failure aborts the save", func(t *testing.T) {
		store := repository.NewMemoryProfileRepository()
		router := newProfileRouter(store, &stubUploader{err: errors.New("gateway down")})

		rr := putProfile(t, router, map[string]string{"name": "Ana"}, true)
		require.Equal(t, http.StatusBadGateway, rr.Code)

		_, err := store.Get(context.Background())
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

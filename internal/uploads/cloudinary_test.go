package uploads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudinaryUpload(t *testing.T) {
	t.Run("posts the file unsigned and returns the secure url", func(t *testing.T) {
		var gotPath, gotPreset, gotFilename string
		var gotData []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotPreset = r.FormValue("upload_preset")

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			gotFilename = header.Filename
			gotData, err = io.ReadAll(file)
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"secure_url": "https://res.cloudinary.com/demo/image/upload/shot.png",
				"public_id":  "shot",
			})
		}))
		defer server.Close()

		u := NewCloudinaryUploader(server.URL, "demo", "portfolio")
		url, err := u.Upload(context.Background(), File{
			Name:        "shot.png",
			ContentType: "image/png",
			Data:        []byte("png-bytes"),
		})
		require.NoError(t, err)

		assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/shot.png", url)
		assert.Equal(t, "/demo/image/upload", gotPath)
		assert.Equal(t, "portfolio", gotPreset)
		assert.Equal(t, "shot.png", gotFilename)
		assert.Equal(t, []byte("png-bytes"), gotData)
	})

	t.Run("non-2xx status is an upload failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad preset", http.StatusBadRequest)
		}))
		defer server.Close()

		u := NewCloudinaryUploader(server.URL, "demo", "portfolio")
		_, err := u.Upload(context.Background(), File{Name: "x.png", Data: []byte("x")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("response without secure_url is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"public_id":"x"}`))
		}))
		defer server.Close()

		u := NewCloudinaryUploader(server.URL, "demo", "portfolio")
		_, err := u.Upload(context.Background(), File{Name: "x.png", Data: []byte("x")})
		assert.Error(t, err)
	})
}

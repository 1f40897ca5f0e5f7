package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/storage"
	"github.com/shashiranjanraj/vastra/pkg/upload"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		mime string
		ext  string
		want bool
	}{
		{"png", "image/png", ".png", true},
		{"jpeg", "image/jpeg", ".jpeg", true},
		{"jpg", "image/jpg", ".jpg", true},
		{"jpeg body with jpg ext", "image/jpeg", ".jpg", true},
		{"mime with charset", "image/png; charset=binary", ".png", true},
		{"uppercase ext", "image/png", ".PNG", true},
		{"gif", "image/gif", ".gif", false},
		{"gif renamed to png", "image/gif", ".png", false},
		{"png renamed to gif", "image/png", ".gif", false},
		{"webp", "image/webp", ".webp", false},
		{"no mime", "", ".png", false},
		{"no ext", "image/png", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, upload.Allowed(tc.mime, tc.ext))
		})
	}
}

// uploadRequest builds a multipart body with a single file part whose
// declared Content-Type is under the caller's control.
func uploadRequest(t *testing.T, field, filename, contentType string, content []byte) (body *bytes.Buffer, boundary string) {
	t.Helper()

	body = &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, mw.Boundary()
}

func TestSaveStoresPNG(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	body, boundary := uploadRequest(t, "picture", "shirt.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest("POST", "/user/admin/products", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	got, err := upload.Save(disk, req, "picture")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "/uploads/"))
	assert.True(t, strings.HasSuffix(got, ".png"))

	files, err := disk.Files("uploads")
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := disk.Get(files[0])
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveMissingFile(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", "Linen shirt"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/user/admin/products", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, err := upload.Save(disk, req, "picture")
	assert.ErrorIs(t, err, upload.ErrMissingFile)
}

func TestSaveRejectsGIF(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	body, boundary := uploadRequest(t, "picture", "banner.gif", "image/gif", []byte("gif-bytes"))
	req := httptest.NewRequest("POST", "/user/admin/products", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	_, err := upload.Save(disk, req, "picture")
	assert.ErrorIs(t, err, upload.ErrNotAllowed)

	// A rejected file must leave nothing behind.
	if files, err := disk.Files("uploads"); err == nil {
		assert.Empty(t, files)
	}
}

func TestSaveRejectsMismatchedExtension(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	// Declared image/png but the extension gives it away.
	body, boundary := uploadRequest(t, "picture", "banner.gif", "image/png", []byte("x"))
	req := httptest.NewRequest("POST", "/user/admin/products", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	_, err := upload.Save(disk, req, "picture")
	assert.ErrorIs(t, err, upload.ErrNotAllowed)
}

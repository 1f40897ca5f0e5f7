// Package upload accepts the single product image attached to a
// create-product request.
//
// A file is accepted only when BOTH its declared MIME type and its filename
// extension are in the jpeg/jpg/png allow-list. Accepted files are written to
// the uploads directory under a millisecond-timestamp filename and the
// public /uploads path is returned for the product record.
//
// The timestamp filename means two uploads in the same millisecond collide;
// that window is long-standing behaviour and is left as-is rather than papered
// over with random suffixes.
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

// ErrMissingFile is returned when the request carries no file for the field.
var ErrMissingFile = errors.New("upload: no file provided")

// ErrNotAllowed is returned when the file fails the image allow-list.
var ErrNotAllowed = errors.New("Only images are allowed")

var (
	allowedMIME = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}
	allowedExt = map[string]bool{
		".jpeg": true,
		".jpg":  true,
		".png":  true,
	}
)

// Allowed is the pure accept/reject predicate: both the declared MIME type
// and the filename extension must be on the allow-list.
func Allowed(mimeType, ext string) bool {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return allowedMIME[strings.TrimSpace(strings.ToLower(mimeType))] &&
		allowedExt[strings.ToLower(ext)]
}

// Save reads the single uploaded file for field from r, validates it, writes
// it to the uploads directory on disk d, and returns the public path to store
// on the product (e.g. "/uploads/1712170230123.png").
//
// Returns ErrMissingFile when no file was sent and ErrNotAllowed when the
// file is not an accepted image type.
func Save(d storage.Disk, r *http.Request, field string) (string, error) {
	if err := r.ParseMultipartForm(config.MaxUploadBytes()); err != nil {
		return "", fmt.Errorf("upload: parse form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", ErrMissingFile
		}
		return "", fmt.Errorf("upload: read field %q: %w", field, err)
	}
	defer file.Close()

	name, err := storedName(header)
	if err != nil {
		return "", err
	}

	dir := config.UploadsDir()
	if err := d.PutStream(path.Join(dir, name), file); err != nil {
		return "", fmt.Errorf("upload: store %s: %w", name, err)
	}

	return "/" + dir + "/" + name, nil
}

// storedName validates the upload and derives the on-disk filename:
// the upload timestamp in milliseconds plus the original extension.
func storedName(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !Allowed(header.Header.Get("Content-Type"), ext) {
		return "", ErrNotAllowed
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + ext, nil
}

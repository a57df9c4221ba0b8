package v1

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const (
	uploadField       = "file"
	multipartMemory   = 8 << 20
	multipartOverhead = 1 << 20
)

var (
	errMissingFile     = errors.New("no file uploaded")
	errMalformedUpload = errors.New("malformed upload")
	errFileTooLarge    = errors.New("file is too large")
	errUnsupportedType = errors.New("unsupported file type")
)

// uploadPolicy describes the files one upload endpoint accepts and where it
// stores them.
type uploadPolicy struct {
	dir       string
	maxSize   int64
	extension string
	mimeType  string
}

type storedUpload struct {
	ID           string
	OriginalName string
	Path         string
	MimeType     string
	Size         int64
}

type uploadResponse struct {
	ID         string        `json:"id"`
	Status     domain.Status `json:"status"`
	UploadedAt time.Time     `json:"uploadedAt"`
}

// accepts matches either the file extension or the declared media type.
func (p uploadPolicy) accepts(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), p.extension) {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))

	return err == nil && mediaType == p.mimeType
}

// store writes the multipart file to the upload directory as
// <uuid><extension>. The uuid becomes the document id.
func (p uploadPolicy) store(w http.ResponseWriter, r *http.Request) (*storedUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, p.maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errFileTooLarge
		}

		return nil, fmt.Errorf("%w: %w", errMalformedUpload, err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, errMissingFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedUpload, err)
	}
	defer file.Close()

	if header.Size > p.maxSize {
		return nil, errFileTooLarge
	}

	if !p.accepts(header) {
		return nil, errUnsupportedType
	}

	id := uuid.NewString()
	path := filepath.Join(p.dir, id+p.extension)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	size, err := io.Copy(dst, file)
	if err = errors.Join(err, dst.Close()); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = p.mimeType
	}

	return &storedUpload{
		ID:           id,
		OriginalName: header.Filename,
		Path:         path,
		MimeType:     mimeType,
		Size:         size,
	}, nil
}

func (u *storedUpload) document(uploadedAt time.Time) domain.Document {
	return domain.Document{
		ID:           u.ID,
		OriginalName: u.OriginalName,
		StoredPath:   u.Path,
		MimeType:     u.MimeType,
		SizeBytes:    u.Size,
		Status:       domain.StatusPending,
		UploadedAt:   uploadedAt,
	}
}

// discard removes an upload that never got a queued job.
func (u *storedUpload) discard(log *slog.Logger) {
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to remove upload",
			slog.String("path", u.Path),
			slog.String("err", err.Error()),
		)
	}
}

func writeUploadError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, errMissingFile), errors.Is(err, errUnsupportedType), errors.Is(err, errMalformedUpload):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errFileTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		log.ErrorContext(r.Context(), "failed to store upload", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to store upload")
	}
}

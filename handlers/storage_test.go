package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"planbuilder/middleware"
	"planbuilder/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubDraftService satisfies draft.PlanDraftService with canned snapshots;
// only the cover-image path records anything.
type stubDraftService struct {
	snapshot models.PlanSnapshot
	coverURL string
}

func (s *stubDraftService) CreateDraft(context.Context, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) GetSnapshot(context.Context, string, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) AppendSession(context.Context, string, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) RequestRemoval(context.Context, string, string, int) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) ResolveRemoval(context.Context, string, string, bool) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetSessionDate(context.Context, string, string, int, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetSessionClock(context.Context, string, string, int, string, string, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) ToggleSessionMeridiem(context.Context, string, string, int, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetSessionActivity(context.Context, string, string, int, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetTitle(context.Context, string, string, string) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetCategories(context.Context, string, string, []int) (*models.PlanSnapshot, error) {
	return &s.snapshot, nil
}

func (s *stubDraftService) SetCoverImage(_ context.Context, _, _, url string) (*models.PlanSnapshot, error) {
	s.coverURL = url
	updated := s.snapshot
	updated.CoverImageURL = url
	return &updated, nil
}

func (s *stubDraftService) Submit(context.Context, string, string) (*models.Plan, error) {
	return &models.Plan{}, nil
}

func (s *stubDraftService) Cancel(context.Context, string, string) error {
	return nil
}

// recordingStorage captures where the handler spooled the upload and
// which assets it destroyed.
type recordingStorage struct {
	uploadedPath string
	deleted      []string
}

func (s *recordingStorage) UploadFile(_ context.Context, localFilePath, _ string) (string, error) {
	s.uploadedPath = localFilePath
	return "https://res.cloudinary.com/demo/image/upload/v2/plans/covers/new.png", nil
}

func (s *recordingStorage) DeleteFile(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func coverUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file failed: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/plans/draft/d1/cover", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func coverTestRouter(storage *recordingStorage, drafts *stubDraftService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCoverHandler(storage, drafts, zap.NewNop())
	r := gin.New()
	r.POST("/api/plans/draft/:draftID/cover",
		func(c *gin.Context) { c.Set(middleware.OwnerIDKey, "owner-1") },
		h.UploadCover,
	)
	return r
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func TestUploadCoverIgnoresClientFilename(t *testing.T) {
	storage := &recordingStorage{}
	drafts := &stubDraftService{}
	router := coverTestRouter(storage, drafts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, coverUploadRequest(t, "../../etc/cron.d/evil", pngBytes))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if storage.uploadedPath == "" {
		t.Fatal("nothing was uploaded")
	}
	tempDir := filepath.Clean(os.TempDir())
	if filepath.Dir(filepath.Clean(storage.uploadedPath)) != tempDir {
		t.Fatalf("upload spooled to %s, outside %s", storage.uploadedPath, tempDir)
	}
	if drafts.coverURL == "" {
		t.Fatal("cover URL was not attached to the draft")
	}
	if _, err := os.Stat(storage.uploadedPath); !os.IsNotExist(err) {
		t.Fatalf("temp file %s was not removed (stat err %v)", storage.uploadedPath, err)
	}
}

func TestUploadCoverDestroysReplacedAsset(t *testing.T) {
	storage := &recordingStorage{}
	drafts := &stubDraftService{
		snapshot: models.PlanSnapshot{
			CoverImageURL: "https://res.cloudinary.com/demo/image/upload/v1/plans/covers/old.jpg",
		},
	}
	router := coverTestRouter(storage, drafts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, coverUploadRequest(t, "cover.png", pngBytes))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !reflect.DeepEqual(storage.deleted, []string{"plans/covers/old"}) {
		t.Fatalf("destroyed assets = %v want [plans/covers/old]", storage.deleted)
	}
}

func TestUploadCoverRejectsNonImage(t *testing.T) {
	storage := &recordingStorage{}
	drafts := &stubDraftService{}
	router := coverTestRouter(storage, drafts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, coverUploadRequest(t, "cover.png", []byte("%PDF-1.7 not an image")))

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d want %d", w.Code, http.StatusUnsupportedMediaType)
	}
	if storage.uploadedPath != "" {
		t.Fatalf("rejected upload still reached storage at %s", storage.uploadedPath)
	}
}

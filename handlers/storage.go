package handlers

import (
	"errors"
	"net/http"
	"os"

	"planbuilder/middleware"
	"planbuilder/services/draft"
	"planbuilder/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxCoverImageSize caps cover uploads at 15MB.
const MaxCoverImageSize = 15 << 20

var allowedCoverTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// CoverHandler uploads plan cover images and attaches them to a draft.
type CoverHandler struct {
	StorageSvc storage.StorageService
	Drafts     draft.PlanDraftService
	Logger     *zap.Logger
}

// NewCoverHandler creates a new CoverHandler instance.
func NewCoverHandler(storageSvc storage.StorageService, drafts draft.PlanDraftService, logger *zap.Logger) *CoverHandler {
	return &CoverHandler{StorageSvc: storageSvc, Drafts: drafts, Logger: logger}
}

// UploadCover accepts a JPEG or PNG cover image, stores it and records
// the resulting URL on the draft. Replacing a cover destroys the previous
// asset.
func (h *CoverHandler) UploadCover(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	draftID := c.Param("draftID")

	// Resolve the draft before paying for an upload; its snapshot also
	// carries the cover being replaced.
	current, err := h.Drafts.GetSnapshot(c.Request.Context(), ownerID, draftID)
	if err != nil {
		if errors.Is(err, draft.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan draft not found or expired"})
			return
		}
		h.Logger.Error("failed to load draft for cover upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	if fileHeader.Size > MaxCoverImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "cover image exceeds the 15MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}
	head := make([]byte, 512)
	n, _ := file.Read(head)
	file.Close()
	if !allowedCoverTypes[http.DetectContentType(head[:n])] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "cover image must be a JPEG or PNG"})
		return
	}

	// Spool to a generated temp path; the client-supplied filename never
	// reaches the filesystem.
	tempFile, err := os.CreateTemp("", "cover-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	tempFilePath := tempFile.Name()
	tempFile.Close()
	defer os.Remove(tempFilePath)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "plans/covers")
	if err != nil {
		h.Logger.Error("cover upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	snapshot, err := h.Drafts.SetCoverImage(c.Request.Context(), ownerID, draftID, url)
	if err != nil {
		if errors.Is(err, draft.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan draft not found or expired"})
			return
		}
		h.Logger.Error("failed to attach cover to draft", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach cover image"})
		return
	}

	// Best effort; an orphaned asset only costs storage.
	if prev := current.CoverImageURL; prev != "" && prev != url {
		if publicID := storage.PublicIDFromURL(prev); publicID != "" {
			if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
				h.Logger.Warn("failed to destroy replaced cover",
					zap.String("publicID", publicID), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, snapshot)
}

package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/httperr"
	"github.com/BruksfildServices01/baymax-health/internal/models"
	"github.com/BruksfildServices01/baymax-health/internal/storage"
)

const maxAvatarBytes = 5 << 20

var avatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type ProfileHandler struct {
	db     *gorm.DB
	avatar storage.AvatarStore
}

// NewProfileHandler accepts a nil store; uploads then answer 503.
func NewProfileHandler(db *gorm.DB, avatar storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{db: db, avatar: avatar}
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if h.avatar == nil {
		httperr.Unavailable(c, "avatar_storage_disabled", "Avatar storage is not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "No file provided.")
		return
	}

	if !avatarExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		httperr.BadRequest(c, "invalid_file_type", "Allowed types: png, jpg, jpeg, gif.")
		return
	}
	if fh.Size > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Avatar must be 5MB or smaller.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_file", "Could not read file.")
		return
	}
	defer f.Close()

	data, err := storage.TranscodeAvatar(f)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			httperr.BadRequest(c, "invalid_image", "File is not a valid image.")
			return
		}
		httperr.Internal(c, "avatar_encoding_failed", "Could not process image.")
		return
	}

	userID := currentUserID(c)
	url, err := h.avatar.UploadAvatar(c.Request.Context(), userID, data)
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Could not upload avatar.")
		return
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", userID).Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not save avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, currentUserID(c)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}

// Update changes name and phone only; email and role are not editable here.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	changes := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Name cannot be empty.")
			return
		}
		changes["name"] = name
	}
	if req.Phone != nil {
		changes["phone"] = strings.TrimSpace(*req.Phone)
	}

	userID := currentUserID(c)
	if len(changes) > 0 {
		if err := h.db.Model(&models.User{}).Where("id = ?", userID).Updates(changes).Error; err != nil {
			httperr.Internal(c, "failed_to_update_user", "Could not update profile.")
			return
		}
	}

	h.Get(c)
}

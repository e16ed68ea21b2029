package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/httperr"
	"github.com/valleclinic/clinic-api/internal/httpresp"
	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
	"github.com/valleclinic/clinic-api/internal/storage"
)

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"role":                user.Role,
		"profile_picture_url": user.ProfilePictureURL,
		"created_at":          user.CreatedAt,
	})
}

// UploadAvatar accepts a multipart "avatar" image, stores it, and saves the
// resulting URL on the user.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.avatars.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Almacenamiento de imágenes no configurado.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Se requiere un archivo de imagen.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Error al leer la imagen.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "No se pudo procesar la imagen.")
		return
	}

	user.ProfilePictureURL = url
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al actualizar el perfil.")
		return
	}

	httpresp.OK(c, gin.H{"profile_picture_url": url})
}

func (h *MeHandler) DeleteAccount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Error al eliminar el usuario.")
		return
	}

	httpresp.Message(c, 200, "Usuario eliminado exitosamente.")
}

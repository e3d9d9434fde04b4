package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/media"
	"github.com/barbercloud/agenda-api/internal/models"
)

type ShopHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

func NewShopHandler(db *gorm.DB, storage *media.Storage) *ShopHandler {
	return &ShopHandler{db: db, storage: storage}
}

// --------- Requests ---------

type ServicePayload struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type CreateShopRequest struct {
	Name     string           `json:"name" binding:"required"`
	Slug     string           `json:"slug" binding:"required"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Services []ServicePayload `json:"services"`
}

type UpdateShopRequest struct {
	Name     *string          `json:"name,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Address  *string          `json:"address,omitempty"`
	Services []ServicePayload `json:"services,omitempty"`
}

func buildServices(shopID uint, payloads []ServicePayload) ([]models.Service, error) {
	services := make([]models.Service, 0, len(payloads))
	for _, p := range payloads {
		price, err := domain.NormalizePrice(p.Price)
		if err != nil {
			return nil, err
		}
		services = append(services, models.Service{
			ShopID: shopID,
			Name:   p.Name,
			Price:  price,
		})
	}
	return services, nil
}

// --------- CRUD ---------

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Shop{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, httperr.CodeValidation, "Slug already exists.")
		return
	}

	shop := models.Shop{
		Name:    req.Name,
		Slug:    slug,
		Phone:   req.Phone,
		Address: req.Address,
	}

	services, err := buildServices(0, req.Services)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	shop.Services = services

	if err := h.db.Create(&shop).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Preload("Services").Order("id ASC").Find(&shops).Error; err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.Preload("Services").First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Shop not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Shop not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		// The service list is owned by the shop and replaced as a unit.
		if req.Services != nil {
			if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.Service{}).Error; err != nil {
				return err
			}
			services, err := buildServices(shop.ID, req.Services)
			if err != nil {
				return err
			}
			if len(services) > 0 {
				if err := tx.Create(&services).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&shop).Error
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.db.Preload("Services").First(&shop, shop.ID)
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Shop{}, id)
	if res.Error != nil {
		writeBusinessError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Shop not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Logo ---------

func (h *ShopHandler) UploadLogo(c *gin.Context) {
	if !h.storage.Enabled() {
		httperr.ServiceUnavailable(c, "media_disabled", "Media storage is not configured.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Shop not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Missing logo file.")
		return
	}
	defer file.Close()

	url, err := h.storage.UploadShopLogo(c.Request.Context(), shop.ID, file)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	shop.LogoURL = url
	if err := h.db.Save(&shop).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	ShopID   uint   `json:"shop_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// --------- CRUD ---------

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, req.ShopID).Error; err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Shop not found.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, httperr.CodeValidation, "Email domain does not resolve.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	client := models.Client{
		ShopID:       shop.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, httperr.CodeValidation, "Email already registered.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")
	if v := c.Query("shop_id"); v != "" {
		q = q.Where("shop_id = ?", v)
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Client not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Client not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}

	if err := h.db.Save(&client).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete removes only the client record; their appointments keep the weak
// back-reference for historical reporting.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		writeBusinessError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Client not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Login ---------

func (h *ClientHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": gin.H{
		"id":      client.ID,
		"name":    client.Name,
		"email":   client.Email,
		"phone":   client.Phone,
		"shop_id": client.ShopID,
	}})
}

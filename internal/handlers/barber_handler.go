package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
	ucAppointment "github.com/barbercloud/agenda-api/internal/usecase/appointment"
	"github.com/barbercloud/agenda-api/internal/validators"
)

type BarberHandler struct {
	db     *gorm.DB
	remove *ucAppointment.RemoveBarber
}

func NewBarberHandler(db *gorm.DB, remove *ucAppointment.RemoveBarber) *BarberHandler {
	return &BarberHandler{db: db, remove: remove}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	ShopID   uint   `json:"shop_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Admin    bool   `json:"admin"`
}

type UpdateBarberRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Admin *bool   `json:"admin,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func barberProfile(b *models.Barber) gin.H {
	return gin.H{
		"id":      b.ID,
		"name":    b.Name,
		"email":   b.Email,
		"phone":   b.Phone,
		"admin":   b.Admin,
		"shop_id": b.ShopID,
	}
}

// --------- CRUD ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
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

	barber := models.Barber{
		ShopID:       shop.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Admin:        req.Admin,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, httperr.CodeValidation, "Email already registered.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")
	if v := c.Query("shop_id"); v != "" {
		q = q.Where("shop_id = ?", v)
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Barber not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Barber not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Admin != nil {
		barber.Admin = *req.Admin
	}

	if err := h.db.Save(&barber).Error; err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, barber)
}

// Delete removes the barber and every appointment that references them,
// terminal ones included. No orphaned appointment may survive a barber
// deletion.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Login ---------

// Login compares the submitted password against the stored hash and returns
// a minimal profile. No token is issued; session state is client-held.
func (h *BarberHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var barber models.Barber
	if err := h.db.Where("email = ?", email).First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barber": barberProfile(&barber)})
}

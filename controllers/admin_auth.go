package controllers

import (
	"crypto/subtle"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/config"
	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /v1/admin/login
//
// Deliberately minimal: a single administrator identity that unlocks the
// expense/cash-entry/report surface. Against the database when it is
// reachable; against the configured credentials in fallback mode.
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var adminID uint
	if svc.Fallback {
		if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
			utils.ServiceUnavailable(c, "Admin login unavailable in fallback mode", nil)
			return
		}
		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(cfg.AdminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) == 1
		if !emailOK || !passwordOK {
			utils.LogError("Fallback admin login failed for %s", req.Email)
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		adminID = 1
	} else {
		var admin models.Admin
		if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			utils.LogError("Admin not found for email: %s: %v", req.Email, err)
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		if !admin.IsActive {
			utils.Forbidden(c, "Admin account is inactive")
			return
		}
		if !utils.CheckPassword(req.Password, admin.Password) {
			utils.LogError("Invalid password for admin: %s", admin.Email)
			utils.Unauthorized(c, "Invalid credentials")
			return
		}

		admin.LastLogin = time.Now()
		if err := config.DB.Save(&admin).Error; err != nil {
			utils.LogError("Failed to update last login for admin: %s: %v", admin.Email, err)
		}
		adminID = admin.ID
	}

	token, err := utils.GenerateAdminToken(adminID)
	if err != nil {
		utils.LogError("Failed to sign JWT token for admin %d: %v", adminID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("admin_id", adminID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save admin session: %v", err)
	}

	utils.LogInfo("Admin login successful: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{"id": adminID, "email": req.Email},
	})
}

// CreateSampleAdmin seeds the administrator record from ADMIN_EMAIL and
// ADMIN_PASSWORD on first startup against a reachable database. A no-op
// when the admin already exists or the variables are unset.
func CreateSampleAdmin() error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := config.DB.Model(&models.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Email:     cfg.AdminEmail,
		Password:  hash,
		FirstName: "Temple",
		LastName:  "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded admin account: %s", cfg.AdminEmail)
	return nil
}

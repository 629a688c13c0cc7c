package services

import (
	"errors"

	"github.com/Trupti-Varma/SAVEBITE/config"
	"github.com/Trupti-Varma/SAVEBITE/models"

	"gorm.io/gorm"
)

const themeKey = "theme"

// GetTheme returns the global UI theme preference, defaulting to light.
func GetTheme() (string, error) {
	var setting models.Setting
	err := config.DB.Where("key = ?", themeKey).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "light", nil
	}
	if err != nil {
		return "", err
	}
	if setting.Value != "dark" {
		return "light", nil
	}
	return "dark", nil
}

// SetTheme stores the theme preference. Only "light" and "dark" are
// accepted.
func SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return errors.New("theme must be light or dark")
	}
	setting := models.Setting{Key: themeKey, Value: theme}
	return config.DB.Where("key = ?", themeKey).
		Assign(models.Setting{Value: theme}).
		FirstOrCreate(&setting).Error
}

package services

import (
	"github.com/Trupti-Varma/SAVEBITE/config"
	"github.com/Trupti-Varma/SAVEBITE/models"
)

// ListNGOs returns the donation recipient directory, seeding it with the
// starter entries on first use.
func ListNGOs() ([]models.NGO, error) {
	var count int64
	if err := config.DB.Model(&models.NGO{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		starter := starterNGOs()
		if err := config.DB.Create(&starter).Error; err != nil {
			return nil, err
		}
	}

	var ngos []models.NGO
	err := config.DB.Order("name").Find(&ngos).Error
	return ngos, err
}

func starterNGOs() []models.NGO {
	return []models.NGO{
		{
			Name:        "City Care Food Bank",
			Distance:    "1.2 km",
			Needs:       models.CategoryProduce + "," + models.CategoryCanned + "," + models.CategoryGrains,
			Rating:      4.8,
			Lat:         19.076,
			Lng:         72.8777,
			Urgency:     "High",
			Description: "Daily meal program for 400+ families",
			Address:     "12 Harbor Rd",
			Phone:       "+91 98200 00001",
		},
		{
			Name:        "Helping Hands Shelter",
			Distance:    "2.8 km",
			Needs:       models.CategoryBakery + "," + models.CategoryDairy,
			Rating:      4.6,
			Lat:         19.0822,
			Lng:         72.8812,
			Description: "Overnight shelter with a community kitchen",
			Address:     "45 Station Ave",
			Phone:       "+91 98200 00002",
		},
		{
			Name:        "Green Plate Initiative",
			Distance:    "4.1 km",
			Needs:       models.CategoryProduce + "," + models.CategoryOther,
			Rating:      4.4,
			Lat:         19.0913,
			Lng:         72.8656,
			Urgency:     "Medium",
			Description: "Surplus redistribution to local schools",
			Address:     "3 Orchard Lane",
			Phone:       "+91 98200 00003",
		},
	}
}

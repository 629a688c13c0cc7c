package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ScanResult is the pre-filled add-item form produced from a photo.
type ScanResult struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	ExpiryEstimation   string  `json:"expiryEstimation"` // YYYY-MM-DD
	QuantityEstimation float64 `json:"quantityEstimation"`
	UnitEstimation     string  `json:"unitEstimation"`
	Condition          string  `json:"condition"`
}

type ScanService struct {
	client *rekognition.Client
}

func NewScanService() (*ScanService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &ScanService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Scan detects labels on a base64-encoded food photo and guesses the
// item fields from the top label.
func (s *ScanService) Scan(base64Img string) (*ScanResult, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := s.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Labels) == 0 {
		return nil, errors.New("no labels detected")
	}

	name := aws.ToString(out.Labels[0].Name)
	category := GuessCategory(name, labelNames(out.Labels))
	return &ScanResult{
		Name:               name,
		Category:           category,
		ExpiryEstimation:   time.Now().AddDate(0, 0, ShelfLifeDays(category)).Format("2006-01-02"),
		QuantityEstimation: 1,
		UnitEstimation:     "pcs",
		Condition:          "Good",
	}, nil
}

func labelNames(labels []types.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, aws.ToString(l.Name))
	}
	return names
}

var categoryHints = map[string]string{
	"fruit":     models.CategoryProduce,
	"vegetable": models.CategoryProduce,
	"plant":     models.CategoryProduce,
	"dairy":     models.CategoryDairy,
	"cheese":    models.CategoryDairy,
	"milk":      models.CategoryDairy,
	"meat":      models.CategoryMeat,
	"beef":      models.CategoryMeat,
	"poultry":   models.CategoryMeat,
	"fish":      models.CategoryMeat,
	"bread":     models.CategoryBakery,
	"pastry":    models.CategoryBakery,
	"grain":     models.CategoryGrains,
	"rice":      models.CategoryGrains,
	"pasta":     models.CategoryGrains,
	"can":       models.CategoryCanned,
	"tin":       models.CategoryCanned,
}

// GuessCategory maps detected labels onto the app's food categories.
func GuessCategory(name string, labels []string) string {
	for _, label := range append([]string{name}, labels...) {
		l := strings.ToLower(label)
		for hint, category := range categoryHints {
			if strings.Contains(l, hint) {
				return category
			}
		}
	}
	return models.CategoryOther
}

// ShelfLifeDays is a rough per-category expiry estimate used when the
// photo carries no date information.
func ShelfLifeDays(category string) int {
	switch category {
	case models.CategoryProduce:
		return 5
	case models.CategoryDairy:
		return 7
	case models.CategoryMeat:
		return 3
	case models.CategoryBakery:
		return 4
	case models.CategoryGrains:
		return 90
	case models.CategoryCanned:
		return 365
	default:
		return 30
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/logger"
	"rentmate/pkg/utils"
)

// Fallback coordinate (Douliu) used when geocoding fails or the address is
// empty, so every listing still lands on the map.
const (
	defaultLat = 23.705
	defaultLng = 120.430
)

type RentalUseCase struct {
	rentalRepo   repository.RentalRepository
	favoriteRepo repository.FavoriteRepository
	storage      StorageClient
	geocoder     Geocoder
}

func NewRentalUseCase(
	rentalRepo repository.RentalRepository,
	favoriteRepo repository.FavoriteRepository,
	storage StorageClient,
	geocoder Geocoder,
) *RentalUseCase {
	return &RentalUseCase{
		rentalRepo:   rentalRepo,
		favoriteRepo: favoriteRepo,
		storage:      storage,
		geocoder:     geocoder,
	}
}

type RentalInput struct {
	LandlordID  string
	Title       string
	Address     string
	Type        string
	Price       int
	Deposit     int
	Floor       int
	Area        float64
	Rooms       int
	Amenities   []string
	Description string
	Images      []string
	IsPublished bool
}

func (uc *RentalUseCase) Create(ctx context.Context, input RentalInput) (*entity.Rental, error) {
	lat, lng := uc.resolveCoordinates(ctx, input.Address)

	images, err := uc.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	rental := &entity.Rental{
		LandlordID:  input.LandlordID,
		Title:       input.Title,
		Address:     input.Address,
		Lat:         lat,
		Lng:         lng,
		Type:        input.Type,
		Price:       input.Price,
		Deposit:     input.Deposit,
		Floor:       input.Floor,
		Area:        input.Area,
		Rooms:       input.Rooms,
		Amenities:   input.Amenities,
		Description: input.Description,
		Images:      images,
		IsPublished: input.IsPublished,
	}

	if err := uc.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	return rental, nil
}

func (uc *RentalUseCase) Update(ctx context.Context, id string, input RentalInput) error {
	current, err := uc.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"title":       input.Title,
		"type":        input.Type,
		"price":       input.Price,
		"deposit":     input.Deposit,
		"floor":       input.Floor,
		"area":        input.Area,
		"rooms":       input.Rooms,
		"amenities":   input.Amenities,
		"description": input.Description,
		"isPublished": input.IsPublished,
	}

	// Re-geocode only when the address actually changed.
	if input.Address != "" && input.Address != current.Address {
		lat, lng := uc.resolveCoordinates(ctx, input.Address)
		fields["address"] = input.Address
		fields["lat"] = lat
		fields["lng"] = lng
	}

	if len(input.Images) > 0 {
		images, err := uc.uploadImages(ctx, input.Images)
		if err != nil {
			return err
		}
		fields["images"] = images
	}

	return uc.rentalRepo.Update(ctx, id, fields)
}

func (uc *RentalUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.rentalRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.rentalRepo.Delete(ctx, id)
}

// RentalDetail is a listing plus its computed favorite count.
type RentalDetail struct {
	*entity.Rental
	FavoriteCount int64 `json:"favorite_count"`
}

func (uc *RentalUseCase) GetByID(ctx context.Context, id string) (*RentalDetail, error) {
	rental, err := uc.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := uc.favoriteRepo.CountByRental(ctx, id)
	if err != nil {
		return nil, err
	}

	return &RentalDetail{
		Rental:        rental,
		FavoriteCount: count,
	}, nil
}

func (uc *RentalUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Rental, error) {
	return uc.rentalRepo.ListByLandlord(ctx, landlordID)
}

func (uc *RentalUseCase) ListPublished(ctx context.Context) ([]*entity.Rental, error) {
	return uc.rentalRepo.ListPublished(ctx)
}

func (uc *RentalUseCase) ListAmenities(ctx context.Context) ([]string, error) {
	return uc.rentalRepo.ListAmenities(ctx)
}

func (uc *RentalUseCase) resolveCoordinates(ctx context.Context, address string) (float64, float64) {
	if address == "" {
		return defaultLat, defaultLng
	}

	lat, lng, err := uc.geocoder.Lookup(ctx, address)
	if err != nil {
		logger.Warn("Geocoding failed for %q, using default coordinate: %v", address, err)
		return defaultLat, defaultLng
	}

	return lat, lng
}

// uploadImages turns base64 payloads into public storage URLs. Entries that
// already are URLs (unchanged images on edit) pass through untouched.
func (uc *RentalUseCase) uploadImages(ctx context.Context, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))

	for _, img := range images {
		if img == "" {
			continue
		}
		if strings.HasPrefix(img, "http") {
			urls = append(urls, img)
			continue
		}

		contentType, data, err := utils.ParseDataURL(img)
		if err != nil {
			return nil, err
		}

		ext := "bin"
		if idx := strings.Index(contentType, "/"); idx >= 0 {
			ext = contentType[idx+1:]
		}

		objectName := fmt.Sprintf("rentals/%s.%s", uuid.New().String(), ext)
		url, err := uc.storage.UploadPublicImage(ctx, objectName, contentType, data)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

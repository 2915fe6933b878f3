package utils

import (
	"fmt"

	"planbuilder/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/spf13/viper"
)

// Cloudinary initializes and returns a Cloudinary-backed StorageService
// using Viper-provided credentials.
func Cloudinary() (storage.StorageService, error) {
	cloudName := viper.GetString("CLOUDINARY_CLOUD_NAME")
	apiKey := viper.GetString("CLOUDINARY_API_KEY")
	apiSecret := viper.GetString("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewStorageService(cld, cloudName), nil
}

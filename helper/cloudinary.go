package helper

import (
	"context"
	"log"
	"mime/multipart"
	"os"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	cld     *cloudinary.Cloudinary
	cldOnce sync.Once
)

func InitCloudinary() *cloudinary.Cloudinary {
	cldOnce.Do(func() {
		var err error
		cld, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Fatalf("Cloudinary init failed: %v", err)
		}
	})
	return cld
}

// UploadImage đẩy file multipart lên Cloudinary, trả về secure URL để lưu vào DB.
func UploadImage(fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	resp, err := InitCloudinary().Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", err
	}

	return resp.SecureURL, nil
}

func DeleteImage(publicID string) error {
	_, err := InitCloudinary().Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

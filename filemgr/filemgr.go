package filemgr

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var productPicDir = "./static/productpic"

const thumbWidth = 200

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func extForMime(mimeType string) (string, error) {
	switch mimeType {
	case "image/jpeg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unsupported image type %q", mimeType)
	}
}

// SaveProductImage stores the uploaded image under the product's id and
// writes a Lanczos-resized thumbnail beside it. Returns the stored
// filename for the product record.
func SaveProductImage(file multipart.File, header *multipart.FileHeader, productID string) (string, error) {
	ext, err := extForMime(header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := EnsureDir(productPicDir); err != nil {
		return "", err
	}
	if err := EnsureDir(filepath.Join(productPicDir, "thumb")); err != nil {
		return "", err
	}

	filename := productID + ext
	savePath := filepath.Join(productPicDir, filename)

	out, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}

	img, err := imaging.Open(savePath)
	if err != nil {
		return "", err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbPath := filepath.Join(productPicDir, "thumb", productID+".jpg")
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", err
	}

	return filename, nil
}

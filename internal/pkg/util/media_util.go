package util

import (
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 通过嗅探文件头判断实际的 MIME 类型
func GetSafeContentType(r io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	contentType := http.DetectContentType(buf[:n])

	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return contentType, nil
}

// GetImageDimensions 解码图片并返回像素宽高
func GetImageDimensions(r io.ReadSeeker) (int, int, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return 0, 0, err
	}

	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

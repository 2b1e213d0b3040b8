package htmlimg

import (
	"context"
	"errors"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
	"resty.dev/v3"
)

// ErrNoImageURL báo hiệu API render trả về response hợp lệ nhưng không chứa URL ảnh.
var ErrNoImageURL = errors.New("render API response does not contain an image url")

// ImageRenderer chuyển một trang HTML (kèm CSS) thành ảnh và trả về URL của ảnh.
type ImageRenderer interface {
	CreateImage(ctx context.Context, html, css string) (string, error)
}

type HCTIService struct {
	client  *resty.Client
	baseURL string
	userID  string
	apiKey  string
}

// NewHCTIService tạo client cho API htmlcsstoimage.com.
// Thông tin xác thực lấy từ config, không nằm trong mã nguồn.
func NewHCTIService(client *resty.Client, config *util.Config) ImageRenderer {
	return &HCTIService{
		client:  client,
		baseURL: config.RenderAPIURL,
		userID:  config.RenderAPIUserID,
		apiKey:  config.RenderAPIKey,
	}
}

package htmlimg

import (
	"context"
	"fmt"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
)

type createImageRequest struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

type createImageResponse struct {
	URL string `json:"url"`
}

// CreateImage gửi HTML lên API render và trả về URL ảnh kết quả.
// Mỗi lần gọi là một lần render độc lập, không cache, không retry.
func (s *HCTIService) CreateImage(ctx context.Context, html, css string) (string, error) {
	var result createImageResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.userID, s.apiKey).
		SetBody(createImageRequest{HTML: html, CSS: css}).
		SetResult(&result).
		Post(s.baseURL + "/image")
	if err != nil {
		return "", fmt.Errorf("failed to call render API: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("render API returned status %s: %s",
			resp.Status(), util.TruncateContent(resp.String(), 500))
	}

	if result.URL == "" {
		return "", fmt.Errorf("%w: body %s", ErrNoImageURL, util.TruncateContent(resp.String(), 500))
	}

	return result.URL, nil
}

package notification

const (
	// AndroidChannelID phải khớp với notification channel mà app Android đăng ký
	// trong MainActivity (high importance, âm thanh tùy chỉnh).
	AndroidChannelID = "high_importance_channel"

	// TypeNewWebOrder là loại thông báo cho đơn hàng web mới,
	// client dựa vào đây để điều hướng khi người dùng bấm vào thông báo.
	TypeNewWebOrder = "new_web_order"

	NewWebOrderTitle = "Bạn có đơn hàng mới!"
)

// Notification chứa nội dung hiển thị và payload data gửi kèm qua FCM.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// NewWebOrderNotification dựng nội dung thông báo cho một đơn hàng web mới.
// Title và body được lặp lại trong data để client xử lý khi app chạy nền.
func NewWebOrderNotification(orderID, customerName, customerPhone string) Notification {
	body := customerName + " - " + customerPhone

	return Notification{
		Title: NewWebOrderTitle,
		Body:  body,
		Data: map[string]string{
			"type":    TypeNewWebOrder,
			"orderId": orderID,
			"title":   NewWebOrderTitle,
			"body":    body,
		},
	}
}

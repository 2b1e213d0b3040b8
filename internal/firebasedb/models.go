package firebasedb

// OrderStatusNew là trạng thái của đơn hàng web vừa được khách đặt.
// Chỉ những đơn hàng ở trạng thái này mới được gửi thông báo.
const OrderStatusNew = "MoiDat"

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderRecord là bản ghi đơn hàng do website ghi vào Realtime Database.
// Hệ thống này chỉ đọc, không bao giờ ghi đè đơn hàng.
type OrderRecord struct {
	Status       string        `json:"status"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
}

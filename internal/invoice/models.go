package invoice

// Invoice là dữ liệu hóa đơn do app POS gửi lên, chỉ tồn tại trong một request.
// TotalPayment được giữ nguyên theo client gửi, không tính lại từ items.
type Invoice struct {
	ShopName      string  `json:"shopName"`
	ShopPhone     string  `json:"shopPhone"`
	ShopAddress   string  `json:"shopAddress"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Items         []Item  `json:"items"`
	TotalPayment  float64 `json:"totalPayment"`
}

type Item struct {
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// LineTotal là thành tiền của một dòng hàng.
func (i Item) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

package invoice

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
)

// Mẫu hóa đơn là một trang HTML hoàn chỉnh với style inline,
// không phụ thuộc tài nguyên ngoài để API render ảnh xử lý được ngay.
const receiptTemplate = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="UTF-8">
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 24px; background: #ffffff; color: #222; width: 480px; }
  .header { text-align: center; border-bottom: 2px solid #222; padding-bottom: 12px; margin-bottom: 16px; }
  .header h1 { font-size: 22px; margin: 0 0 4px 0; }
  .header p { font-size: 13px; margin: 2px 0; color: #555; }
  .customer { font-size: 14px; margin-bottom: 16px; }
  .customer p { margin: 2px 0; }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  th { text-align: left; border-bottom: 1px solid #999; padding: 6px 4px; }
  td { padding: 6px 4px; border-bottom: 1px dashed #ddd; }
  .num { text-align: right; }
  .total { margin-top: 16px; font-size: 16px; font-weight: bold; text-align: right; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.ShopName}}</h1>
    <p>{{.ShopAddress}}</p>
    <p>SĐT: {{.ShopPhone}}</p>
  </div>
  <div class="customer">
    <p>Khách hàng: {{.CustomerName}}</p>
    <p>SĐT: {{.CustomerPhone}}</p>
  </div>
  <table>
    <tr><th>Tên hàng</th><th class="num">SL</th><th class="num">Đơn giá</th><th class="num">Thành tiền</th></tr>
    {{range .Items}}<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{vnd .UnitPrice}}</td><td class="num">{{vnd .LineTotal}}</td></tr>
    {{end}}
  </table>
  <div class="total">Tổng thanh toán: {{vnd .TotalPayment}}</div>
</body>
</html>`

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"vnd": util.FormatVNDFloat,
}).Parse(receiptTemplate))

// RenderHTML dựng trang hóa đơn HTML từ dữ liệu client gửi lên.
func RenderHTML(inv Invoice) (string, error) {
	var builder strings.Builder
	if err := receiptTmpl.Execute(&builder, inv); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}

	return builder.String(), nil
}

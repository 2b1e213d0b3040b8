package api

import (
	"net/http"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/invoice"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type renderInvoiceRequest struct {
	// Dữ liệu hóa đơn, bắt buộc
	InvoiceData *invoice.Invoice `json:"invoiceData"`
}

type renderInvoiceResponse struct {
	ImageURL string `json:"imageUrl"`
}

func (server *Server) renderInvoice(ctx *gin.Context) {
	var req renderInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, invalidArgumentResponse("Dữ liệu request không hợp lệ"))
		return
	}

	if req.InvoiceData == nil {
		ctx.JSON(http.StatusBadRequest, invalidArgumentResponse("Thiếu dữ liệu hóa đơn (invoiceData)"))
		return
	}

	html, err := invoice.RenderHTML(*req.InvoiceData)
	if err != nil {
		log.Err(err).Msg("failed to render invoice html")
		ctx.JSON(http.StatusInternalServerError, internalResponse("Không thể tạo ảnh hóa đơn"))
		return
	}

	// Lỗi từ API render chỉ ghi log phía server, không trả nguyên nhân về client
	imageURL, err := server.imageRenderer.CreateImage(ctx, html, "")
	if err != nil {
		log.Err(err).Msg("failed to create invoice image")
		ctx.JSON(http.StatusInternalServerError, internalResponse("Không thể tạo ảnh hóa đơn"))
		return
	}

	ctx.JSON(http.StatusOK, renderInvoiceResponse{ImageURL: imageURL})
}

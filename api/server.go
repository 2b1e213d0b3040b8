package api

import (
	"net/http"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/htmlimg"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
	"github.com/30042004huy/Tecksale-quanlibanhang/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

type Server struct {
	router          *gin.Engine
	config          *util.Config
	imageRenderer   htmlimg.ImageRenderer
	taskDistributor worker.TaskDistributor
	taskInspector   worker.TaskInspector
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *util.Config, taskDistributor worker.TaskDistributor, taskInspector worker.TaskInspector) (*Server, error) {
	// Khởi tạo resty client với timeout cấu hình cho API render ảnh
	restyClient := resty.New().SetTimeout(config.RenderAPITimeout)
	log.Info().Msg("Resty client created successfully ✅")

	imageRenderer := htmlimg.NewHCTIService(restyClient, config)
	log.Info().Msg("Render API client created successfully ✅")

	server := &Server{
		config:          config,
		imageRenderer:   imageRenderer,
		taskDistributor: taskDistributor,
		taskInspector:   taskInspector,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	// Endpoint callable cho app POS: dựng hóa đơn HTML và render thành ảnh
	v1.POST("/invoices/render", server.renderInvoice)

	// Webhook nhận sự kiện tạo đơn hàng từ Realtime Database
	hookGroup := v1.Group("/hooks")
	{
		hookGroup.POST("/orders", server.handleOrderCreated)
		hookGroup.GET("/orders/:taskID", server.getOrderNotifyStatus)
	}

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/controller"
	"github.com/Xushengqwer/board_service/metrics"
)

// SetupRouter 配置 Gin 引擎、全局中间件和路由
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.BoardConfig,
	boardController *controller.BoardController,
) *gin.Engine {
	router := gin.New()

	if err := controller.RegisterValidators(); err != nil {
		logger.Error("注册自定义校验规则失败，角色名将只在服务层校验", zap.Error(err))
	}

	// 中间件顺序: 追踪 -> 指标 -> panic 恢复 -> 访问日志 -> 超时 -> 用户上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(metrics.Middleware())
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	router.Use(commonMiddleware.RequestLoggerMiddleware(logger.Logger()))
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	router.Use(commonMiddleware.UserContextMiddleware())

	v1 := router.Group("/api/v1/board")
	boardController.RegisterRoutes(v1)
	logger.Info("看板路由已注册到 /api/v1/board 分组")

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return router
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/controller"
	"github.com/Xushengqwer/board_service/dependencies"
	_ "github.com/Xushengqwer/board_service/docs"
	"github.com/Xushengqwer/board_service/mq/consumer"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/board_service/repo/redis"
	"github.com/Xushengqwer/board_service/router"
	"github.com/Xushengqwer/board_service/service"
	"github.com/Xushengqwer/board_service/tasks"
)

// @title           Board Service API
// @version         1.0
// @description     看板服务，提供看板及其角色权限列表的增删改查。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 配置
	var cfg appConfig.BoardConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 日志
	logger, err := sharedCore.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", err)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("配置加载成功", zap.String("config", configFile))

	// 3. 追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 基础设施
	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(err))
	}

	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}
	defer rdb.Close()

	archiveStore, err := dependencies.InitArchiveStore(&cfg.COSConfig, logger)
	if err != nil {
		logger.Fatal("初始化 COS 归档存储失败", zap.Error(err))
	}

	// 接口变量只在 Kafka 可用时赋值，避免把 nil 指针装进非 nil 接口
	var publisher service.BoardEventPublisher
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger.Logger())
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，看板事件不会发送")
	}

	// 5. 仓库与服务
	postRepo := mysql.NewPostRepository(db)
	boardRepo := mysql.NewBoardRepository(db, postRepo, logger.Logger())
	boardCache := redisrepo.NewBoardCache(rdb, logger.Logger())

	boardService := service.NewBoardService(
		db,
		boardRepo,
		postRepo,
		boardCache,
		archiveStore,
		publisher,
		cfg.BoardCacheConfig.DetailTTL(),
		logger.Logger(),
	)
	boardController := controller.NewBoardController(boardService)

	// 6. Kafka 消费者: board.changed -> 重建详情缓存
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if len(cfg.KafkaConfig.Brokers) > 0 && cfg.KafkaConfig.Topics.BoardChanged != "" {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			groupID = constant.ServiceName + "_group"
			logger.Warn("未配置 ConsumerGroupID，使用默认值", zap.String("groupID", groupID))
		}
		changedHandler := consumer.NewBoardChangedHandler(logger.Logger(), boardService)
		changedConsumer, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, cfg.KafkaConfig.Topics.BoardChanged, changedHandler, logger.Logger())
		if err != nil {
			logger.Fatal("初始化 board.changed 消费者失败", zap.Error(err))
		}
		consumers = append(consumers, changedConsumer)
	} else {
		logger.Warn("Kafka brokers 或 boardChanged topic 未配置，跳过消费者初始化")
	}
	for _, c := range consumers {
		consumerWg.Add(1)
		go func(cons *consumer.Consumer) {
			defer consumerWg.Done()
			cons.Start(consumerCtx)
		}(c)
	}

	// 7. 定时任务
	roleTask, err := tasks.NewRoleIntegrityTask(boardRepo, cfg.RoleScanConfig, logger.Logger())
	if err != nil {
		logger.Fatal("初始化角色字段巡检任务失败", zap.Error(err))
	}

	// 8. HTTP 服务
	ginRouter := router.SetupRouter(logger, &cfg, boardController)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	select {
	case <-roleTask.Stop().Done():
		logger.Info("角色字段巡检任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待巡检任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	logger.Info("服务已成功关闭")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/dependencies"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/board_service/repo/redis"
	"github.com/Xushengqwer/board_service/service"
)

func main() {
	var configFile string
	var numBoards, postsPerBoard, waitSeconds int
	var seed int64
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numBoards, "n", 10, "要生成的看板数量")
	flag.IntVar(&postsPerBoard, "posts", 5, "每个看板生成的帖子数量上限")
	flag.IntVar(&waitSeconds, "wait", 3, "填充后等待异步 Kafka 事件发送的秒数")
	flag.Int64Var(&seed, "seed", 0, "随机种子，0 表示使用当前时间")
	flag.Parse()

	if numBoards <= 0 || postsPerBoard < 0 || waitSeconds < 0 {
		fmt.Println("错误: -n 必须大于 0，-posts 和 -wait 不能为负")
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var cfg appConfig.BoardConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	logger, err := core.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}

	// 创建看板不读写缓存，这里不做 Ping
	rdb := redis.NewClient(dependencies.NewRedisOptions(&cfg.RedisConfig))
	defer rdb.Close()

	var publisher service.BoardEventPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger.Logger())
		defer kafkaProducer.Close()
		publisher = kafkaProducer
	}

	// 填充不会删除看板，不需要归档
	archive, _ := dependencies.InitArchiveStore(nil, logger)

	postRepo := mysql.NewPostRepository(db)
	boardRepo := mysql.NewBoardRepository(db, postRepo, logger.Logger())
	boardCache := redisRepo.NewBoardCache(rdb, logger.Logger())
	boardSvc := service.NewBoardService(db, boardRepo, postRepo, boardCache, archive, publisher, cfg.BoardCacheConfig.DetailTTL(), logger.Logger())

	start := time.Now()
	seeder := NewSeeder(boardSvc, postRepo, db, logger.Logger(), seed)
	created := seeder.Seed(context.Background(), numBoards, postsPerBoard)
	logger.Info("数据填充完成",
		zap.Int("boards", created),
		zap.Int64("seed", seed),
		zap.Duration("duration", time.Since(start)))

	if waitSeconds > 0 && publisher != nil {
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}
}

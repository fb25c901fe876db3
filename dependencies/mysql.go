package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/entities"
)

const (
	mysqlConnectRetries  = 5
	mysqlConnectInterval = 2 * time.Second
)

// InitMySQL 连接主库（带重试），有从库时注册 dbresolver 读写分离，最后执行 AutoMigrate
func InitMySQL(cfg *appConfig.BoardConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}

	var db *gorm.DB
	var err error
	logger.Info("开始连接主数据库...")
	for i := 0; i < mysqlConnectRetries; i++ {
		db, err = gorm.Open(mysql.Open(mysqlCfg.Write.DSN), gormConfig)
		if err == nil {
			err = pingGorm(db)
			if err == nil {
				break
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", mysqlConnectRetries), zap.Error(err))
		if i < mysqlConnectRetries-1 {
			time.Sleep(mysqlConnectInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")

	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replicaCfg.DSN))
	}
	if len(replicas) > 0 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
			Replicas: replicas,
			Policy:   dbresolver.StrictRoundRobinPolicy(),
		}))
		if err != nil {
			return nil, fmt.Errorf("配置 GORM 读写分离失败: %w", err)
		}
		logger.Info("已启用读写分离", zap.Int("replicas", len(replicas)))
	} else {
		logger.Info("未配置有效的从数据库，不启用读写分离")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}
	maxIdle, maxOpen, maxLife := mysqlCfg.PoolSettings()
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("maxIdle", maxIdle),
		zap.Int("maxOpen", maxOpen),
		zap.Int("maxLifetimeSec", maxLife))

	// 外键 tb_post.board_id -> tb_board.id 由 Board.Posts 的 constraint 标签生成，Board 必须先建
	if err := db.AutoMigrate(&entities.Board{}, &entities.Post{}); err != nil {
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")
	return db, nil
}

func pingGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

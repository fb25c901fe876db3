package config

import "github.com/Xushengqwer/go-common/config"

// BoardConfig 是 board_service 的顶层配置，由 core.LoadConfig 从 YAML 文件加载。
type BoardConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	BoardCacheConfig BoardCacheConfig     `mapstructure:"boardCacheConfig" json:"boardCacheConfig" yaml:"boardCacheConfig"`
	RoleScanConfig   RoleScanConfig       `mapstructure:"roleScanConfig" json:"roleScanConfig" yaml:"roleScanConfig"`
	COSConfig        COSConfig            `mapstructure:"archiveCosConfig" json:"archiveCosConfig" yaml:"archiveCosConfig"`
}

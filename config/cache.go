package config

import "time"

// BoardCacheConfig 控制看板详情在 Redis 中的缓存行为
type BoardCacheConfig struct {
	// DetailTTLSeconds 是 board_detail:{id} 的过期时间（秒）。
	// 小于等于 0 时使用 DefaultDetailTTL。
	DetailTTLSeconds int `mapstructure:"detailTTLSeconds" json:"detailTTLSeconds" yaml:"detailTTLSeconds"`
}

// DefaultDetailTTL 未配置 TTL 时的兜底值
const DefaultDetailTTL = 30 * time.Minute

// DetailTTL 返回生效的缓存过期时间
func (c BoardCacheConfig) DetailTTL() time.Duration {
	if c.DetailTTLSeconds <= 0 {
		return DefaultDetailTTL
	}
	return time.Duration(c.DetailTTLSeconds) * time.Second
}

// RoleScanConfig 是角色字段完整性巡检任务的配置
type RoleScanConfig struct {
	// CronSpec 为空时使用 constant.RoleScanCronSpec
	CronSpec string `mapstructure:"cronSpec" json:"cronSpec" yaml:"cronSpec"`

	// BatchSize 是 FindInBatches 每批读取的看板数量
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`
}

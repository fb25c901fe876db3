package config

// SourceConfig 单个数据源（主库或某个从库）
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"-" yaml:"dsn"`
	// 以下三项为空时回落到 MySQLConfig 上的共享值
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 主从配置。Read 为空表示不启用读写分离。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" json:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" json:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}

// PoolSettings 计算主库连接池参数：主库单独配置优先，否则使用共享值
func (c MySQLConfig) PoolSettings() (maxIdle, maxOpen, maxLifetimeSec int) {
	maxIdle, maxOpen, maxLifetimeSec = c.SharedMaxIdleConns, c.SharedMaxOpenConns, c.SharedConnMaxLifetime
	if c.Write.MaxIdleConns != nil {
		maxIdle = *c.Write.MaxIdleConns
	}
	if c.Write.MaxOpenConns != nil {
		maxOpen = *c.Write.MaxOpenConns
	}
	if c.Write.ConnMaxLifetime != nil {
		maxLifetimeSec = *c.Write.ConnMaxLifetime
	}
	return
}

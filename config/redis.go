package config

// RedisConfig 单节点 Redis 连接配置
type RedisConfig struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"`    // 秒
	ReadTimeout  int    `mapstructure:"readTimeout" json:"readTimeout" yaml:"readTimeout"`    // 秒
	WriteTimeout int    `mapstructure:"writeTimeout" json:"writeTimeout" yaml:"writeTimeout"` // 秒
}

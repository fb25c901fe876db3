package config

// COSConfig 腾讯云 COS 配置，用于存放被删除看板的归档快照。
// SecretID 为空时视为未启用归档。
type COSConfig struct {
	SecretID   string `mapstructure:"secretId" json:"-" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"-" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
}

// Enabled 判断归档存储是否已配置
func (c COSConfig) Enabled() bool {
	return c.SecretID != "" && c.SecretKey != ""
}

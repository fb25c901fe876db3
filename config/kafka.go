package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	BoardChanged string `mapstructure:"boardChanged" json:"boardChanged" yaml:"boardChanged"` // 看板创建或更新
	BoardDeleted string `mapstructure:"boardDeleted" json:"boardDeleted" yaml:"boardDeleted"` // 看板删除（含级联帖子）
}

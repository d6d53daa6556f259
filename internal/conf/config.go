package conf

import "path/filepath"

type LogConfig struct {
	Enable     bool   `json:"enable" env:"LOG_ENABLE"`
	Name       string `json:"name" env:"LOG_NAME"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type SortConfig struct {
	By           string `json:"by" env:"BY"`
	Direction    string `json:"direction" env:"DIRECTION"`
	FoldersFirst bool   `json:"folders_first" env:"FOLDERS_FIRST"`
}

type Config struct {
	Force    bool   `json:"force" env:"FORCE"`
	BaseURL  string `json:"base_url" env:"BASE_URL"`
	Token    string `json:"token" env:"TOKEN"`
	Timeout  int    `json:"timeout" env:"TIMEOUT"`
	RetryNum int    `json:"retry_num" env:"RETRY_NUM"`
	// max concurrent requests inside one batch operation, 0 = unbounded
	TransferLimit int        `json:"transfer_limit" env:"TRANSFER_LIMIT"`
	CacheTTL      int        `json:"cache_ttl" env:"CACHE_TTL"` // minutes, 0 disables the listing cache
	Sort          SortConfig `json:"sort" envPrefix:"SORT_"`
	Log           LogConfig  `json:"log" envPrefix:"LOG_"`
}

func DefaultConfig(dataDir string) *Config {
	logPath := filepath.Join(dataDir, "log/log.log")
	return &Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		RetryNum:      3,
		TransferLimit: 8,
		CacheTTL:      5,
		Sort: SortConfig{
			By:           SortByName,
			Direction:    DirectionAsc,
			FoldersFirst: true,
		},
		Log: LogConfig{
			Enable:     true,
			Name:       logPath,
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
	}
}

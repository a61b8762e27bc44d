package config

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InventoryConfig holds operator-tunable inventory policy. It lives in
// inventory.yml rather than the environment so it can be reloaded
// without a restart.
type InventoryConfig struct {
	History HistoryPolicy `mapstructure:"history"`
}

// HistoryPolicy bounds stock-history queries.
type HistoryPolicy struct {
	DefaultLimit int `mapstructure:"defaultLimit"`
	MaxLimit     int `mapstructure:"maxLimit"`
}

func DefaultInventoryConfig() InventoryConfig {
	return InventoryConfig{
		History: HistoryPolicy{
			DefaultLimit: 50,
			MaxLimit:     250,
		},
	}
}

type InventoryConfigHolder struct {
	current atomic.Value // holds InventoryConfig
}

func NewInventoryConfigHolder() (*InventoryConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("inventory")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/stocklight/config") // Volume-mounted config
	v.AddConfigPath("/etc/stocklight")            // System config
	v.AddConfigPath(".")                          // Current directory (dev mode)

	v.SetEnvPrefix("STOCKLIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultInventoryConfig()
	v.SetDefault("inventory.history.defaultLimit", defaults.History.DefaultLimit)
	v.SetDefault("inventory.history.maxLimit", defaults.History.MaxLimit)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg InventoryConfig
	if err := v.UnmarshalKey("inventory", &cfg); err != nil {
		return nil, err
	}
	if err := validateInventoryConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InventoryConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InventoryConfig
		if err := v.UnmarshalKey("inventory", &updated); err != nil {
			log.Printf("[inventory-config] reload failed: %v", err)
			return
		}
		if err := validateInventoryConfig(updated); err != nil {
			log.Printf("[inventory-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[inventory-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticInventoryConfigHolder wraps a fixed policy without file
// watching. Intended for tests.
func NewStaticInventoryConfigHolder(cfg InventoryConfig) *InventoryConfigHolder {
	holder := &InventoryConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *InventoryConfigHolder) Get() InventoryConfig {
	return h.current.Load().(InventoryConfig)
}

func validateInventoryConfig(cfg InventoryConfig) error {
	if cfg.History.DefaultLimit <= 0 {
		return fmt.Errorf("history.defaultLimit must be positive, got %d", cfg.History.DefaultLimit)
	}
	if cfg.History.MaxLimit < cfg.History.DefaultLimit {
		return fmt.Errorf("history.maxLimit %d is below history.defaultLimit %d",
			cfg.History.MaxLimit, cfg.History.DefaultLimit)
	}
	return nil
}

package config

import (
	"time"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Calendar    CalendarConfig    `yaml:"calendar"`
	Quality     QualityConfig     `yaml:"quality"`
	Discount    DiscountConfig    `yaml:"discount"`
	Pricing     PricingConfig     `yaml:"pricing"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// RunTimeout bounds a single command invocation.
	RunTimeout time.Duration `yaml:"run_timeout" env:"DATABASE_RUN_TIMEOUT" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CalendarConfig decides which calendar day "today" is.
type CalendarConfig struct {
	Timezone string `yaml:"timezone" env:"CALENDAR_TIMEZONE" env-default:"UTC"`
}

// QualityConfig holds quality check engine parameters.
type QualityConfig struct {
	RetentionDays      int     `yaml:"retention_days"         env:"QUALITY_RETENTION_DAYS"         env-default:"30"`
	AnomalyMultiplier  float64 `yaml:"anomaly_multiplier"     env:"QUALITY_ANOMALY_MULTIPLIER"     env-default:"10"`
	RecentOrderDays    int     `yaml:"recent_order_days"      env:"QUALITY_RECENT_ORDER_DAYS"      env-default:"7"`
	MaxDiscountPercent float64 `yaml:"max_discount_percent"   env:"QUALITY_MAX_DISCOUNT_PERCENT"   env-default:"30"`
	BulkQuantity       int     `yaml:"bulk_quantity"          env:"QUALITY_BULK_QUANTITY"          env-default:"100"`
}

// DiscountConfig holds the discount rule table.
type DiscountConfig struct {
	PlatinumPercent float64 `yaml:"platinum_percent"     env:"DISCOUNT_PLATINUM_PERCENT"     env-default:"15"`
	GoldPercent     float64 `yaml:"gold_percent"         env:"DISCOUNT_GOLD_PERCENT"         env-default:"10"`
	SilverPercent   float64 `yaml:"silver_percent"       env:"DISCOUNT_SILVER_PERCENT"       env-default:"5"`
	BronzePercent   float64 `yaml:"bronze_percent"       env:"DISCOUNT_BRONZE_PERCENT"       env-default:"0"`
	LargeOrderTotal float64 `yaml:"large_order_total"    env:"DISCOUNT_LARGE_ORDER_TOTAL"    env-default:"1000"`
	LargeOrderBonus float64 `yaml:"large_order_bonus"    env:"DISCOUNT_LARGE_ORDER_BONUS"    env-default:"5"`
	LifetimeTotal   float64 `yaml:"lifetime_total"       env:"DISCOUNT_LIFETIME_TOTAL"       env-default:"5000"`
	LifetimeBonus   float64 `yaml:"lifetime_bonus"       env:"DISCOUNT_LIFETIME_BONUS"       env-default:"3"`
	MaxPercent      float64 `yaml:"max_percent"          env:"DISCOUNT_MAX_PERCENT"          env-default:"25"`
}

// PricingConfig holds stale pricing thresholds, in days.
type PricingConfig struct {
	StaleDays    int `yaml:"stale_days"    env:"PRICING_STALE_DAYS"    env-default:"180"`
	CriticalDays int `yaml:"critical_days" env:"PRICING_CRITICAL_DAYS" env-default:"365"`
}

// MaintenanceConfig holds order cleanup settings.
type MaintenanceConfig struct {
	DefaultDays int   `yaml:"default_days" env:"MAINTENANCE_DEFAULT_DAYS" env-default:"90"`
	LockKey     int64 `yaml:"lock_key"     env:"MAINTENANCE_LOCK_KEY"     env-default:"7244001"`
}

// Location returns the timezone used to determine the current calendar day.
// Validate guarantees it loads.
func (c CalendarConfig) Location() *time.Location {
	return domain.ParseTimezone(c.Timezone)
}

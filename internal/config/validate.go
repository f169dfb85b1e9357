package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database: dsn is required")
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar: timezone %q: %w", c.Calendar.Timezone, err)
	}
	if err := c.Quality.validate(); err != nil {
		return fmt.Errorf("quality: %w", err)
	}
	if err := c.Discount.validate(); err != nil {
		return fmt.Errorf("discount: %w", err)
	}
	if err := c.Pricing.validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if c.Maintenance.DefaultDays < 0 {
		return fmt.Errorf("maintenance: default_days must be >= 0 (got %d)", c.Maintenance.DefaultDays)
	}
	if c.Database.RunTimeout <= 0 {
		return fmt.Errorf("database: run_timeout must be > 0 (got %v)", c.Database.RunTimeout)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (q *QualityConfig) validate() error {
	if q.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", q.RetentionDays)
	}
	if q.AnomalyMultiplier <= 0 {
		return fmt.Errorf("anomaly_multiplier must be > 0 (got %v)", q.AnomalyMultiplier)
	}
	if q.RecentOrderDays <= 0 {
		return fmt.Errorf("recent_order_days must be > 0 (got %d)", q.RecentOrderDays)
	}
	if q.MaxDiscountPercent < 0 || q.MaxDiscountPercent > 100 {
		return fmt.Errorf("max_discount_percent must be in [0,100] (got %v)", q.MaxDiscountPercent)
	}
	if q.BulkQuantity <= 0 {
		return fmt.Errorf("bulk_quantity must be > 0 (got %d)", q.BulkQuantity)
	}
	return nil
}

func (d *DiscountConfig) validate() error {
	if d.MaxPercent < 0 || d.MaxPercent > 100 {
		return fmt.Errorf("max_percent must be in [0,100] (got %v)", d.MaxPercent)
	}
	for name, v := range map[string]float64{
		"platinum_percent":  d.PlatinumPercent,
		"gold_percent":      d.GoldPercent,
		"silver_percent":    d.SilverPercent,
		"bronze_percent":    d.BronzePercent,
		"large_order_bonus": d.LargeOrderBonus,
		"lifetime_bonus":    d.LifetimeBonus,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %v)", name, v)
		}
	}
	return nil
}

func (p *PricingConfig) validate() error {
	if p.StaleDays <= 0 {
		return fmt.Errorf("stale_days must be > 0 (got %d)", p.StaleDays)
	}
	if p.CriticalDays <= p.StaleDays {
		return fmt.Errorf("critical_days must be > stale_days (got %d <= %d)", p.CriticalDays, p.StaleDays)
	}
	return nil
}

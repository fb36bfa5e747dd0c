package service

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/payments/model"
	"tamilmandram_backend/internals/helpers/scheduler"
)

var ErrNoSettings = errors.New("payment settings are not configured")

// Settings is the decoded, checkout-facing view of the settings row.
type Settings struct {
	ActiveMethods         []string
	TaxRate               decimal.Decimal
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Epayum                map[string]any
	Fpx                   map[string]any
}

// MethodActive reports whether method may be offered at checkout.
func (s Settings) MethodActive(method string) bool {
	for _, m := range s.ActiveMethods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// RequiresReceipt reads the per-method descriptor; missing flag defaults to
// true - both supported methods are proof-of-payment based.
func (s Settings) RequiresReceipt(method string) bool {
	var desc map[string]any
	switch strings.ToLower(method) {
	case model.MethodEpayum:
		desc = s.Epayum
	case model.MethodFpx:
		desc = s.Fpx
	}
	if desc != nil {
		if v, ok := desc["requires_receipt"].(bool); ok {
			return v
		}
	}
	return true
}

// Store caches the settings row in memory. Reads are hot (every storefront
// page and every checkout); writes are rare admin actions that invalidate
// the cache. A background refresh keeps long-idle processes current.
type Store struct {
	db *gorm.DB

	mu      sync.RWMutex
	current *Settings

	stopRefresh func()
	rewarm      *scheduler.Debouncer
}

func NewStore(db *gorm.DB) *Store {
	s := &Store{db: db, rewarm: scheduler.NewDebouncer(500 * time.Millisecond)}
	s.stopRefresh = scheduler.Interval(5*time.Minute, func() { _ = s.reload() })
	return s
}

// Close stops the background refresh.
func (s *Store) Close() {
	if s.stopRefresh != nil {
		s.stopRefresh()
	}
	s.rewarm.Stop()
}

// Get returns the cached settings, loading on first use.
func (s *Store) Get() (Settings, error) {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur != nil {
		return *cur, nil
	}
	if err := s.reload(); err != nil {
		return Settings{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Settings{}, ErrNoSettings
	}
	return *s.current, nil
}

// Invalidate drops the cache after an admin write. A re-warm is scheduled
// behind a short debounce, so a burst of saves triggers one reload.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.rewarm.Trigger(func() { _ = s.reload() })
}

func (s *Store) reload() error {
	var row model.PaymentSettingModel
	err := s.db.Order("payment_setting_created_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoSettings
	}
	if err != nil {
		return err
	}

	decoded := decode(row)
	s.mu.Lock()
	s.current = &decoded
	s.mu.Unlock()
	return nil
}

func decode(row model.PaymentSettingModel) Settings {
	out := Settings{
		TaxRate:               row.PaymentSettingTaxRate,
		ShippingFee:           row.PaymentSettingShippingFee,
		FreeShippingThreshold: row.PaymentSettingFreeShippingThreshold,
	}
	_ = json.Unmarshal(row.PaymentSettingActiveMethods, &out.ActiveMethods)
	if len(row.PaymentSettingEpayum) > 0 {
		_ = json.Unmarshal(row.PaymentSettingEpayum, &out.Epayum)
	}
	if len(row.PaymentSettingFpx) > 0 {
		_ = json.Unmarshal(row.PaymentSettingFpx, &out.Fpx)
	}
	return out
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payment method identifiers. Which are active, and whether each requires a
// receipt proof, is configuration - not a hardcoded rule.
const (
	MethodEpayum = "epayum"
	MethodFpx    = "fpx"
)

// PaymentSettingModel is a single-row table; the newest row wins.
type PaymentSettingModel struct {
	PaymentSettingID                    string          `gorm:"column:payment_setting_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"payment_setting_id"`
	PaymentSettingActiveMethods         datatypes.JSON  `gorm:"column:payment_setting_active_methods;type:jsonb;not null" json:"payment_setting_active_methods"` // ["epayum","fpx"]
	PaymentSettingTaxRate               decimal.Decimal `gorm:"column:payment_setting_tax_rate;type:numeric(5,2);not null;default:0" json:"payment_setting_tax_rate"`
	PaymentSettingShippingFee           decimal.Decimal `gorm:"column:payment_setting_shipping_fee;type:numeric(12,2);not null;default:0" json:"payment_setting_shipping_fee"`
	PaymentSettingFreeShippingThreshold decimal.Decimal `gorm:"column:payment_setting_free_shipping_threshold;type:numeric(12,2);not null;default:0" json:"payment_setting_free_shipping_threshold"`
	PaymentSettingEpayum                datatypes.JSON  `gorm:"column:payment_setting_epayum;type:jsonb" json:"payment_setting_epayum"` // payment-link descriptor
	PaymentSettingFpx                   datatypes.JSON  `gorm:"column:payment_setting_fpx;type:jsonb" json:"payment_setting_fpx"`       // bank-transfer descriptor

	PaymentSettingCreatedAt time.Time `gorm:"column:payment_setting_created_at;autoCreateTime" json:"payment_setting_created_at"`
	PaymentSettingUpdatedAt time.Time `gorm:"column:payment_setting_updated_at;autoUpdateTime" json:"payment_setting_updated_at"`
}

func (PaymentSettingModel) TableName() string {
	return "payment_settings"
}

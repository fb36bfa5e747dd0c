package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tamilmandram_backend/internals/features/store/payments/model"
)

// ====================
// Response DTO
// ====================

type PaymentSettingsDTO struct {
	ActivePaymentMethods []string        `json:"active_payment_methods"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	Shipping             ShippingDTO     `json:"shipping"`
	Epayum               json.RawMessage `json:"epayum,omitempty"`
	Fpx                  json.RawMessage `json:"fpx,omitempty"`
}

type ShippingDTO struct {
	Fee                   string `json:"fee"`
	FreeShippingThreshold string `json:"free_shipping_threshold"`
}

// ====================
// Request DTO
// ====================

type UpdatePaymentSettingsRequest struct {
	ActivePaymentMethods []string        `json:"active_payment_methods" validate:"required,min=1,dive,oneof=epayum fpx"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	ShippingFee          decimal.Decimal `json:"shipping_fee"`
	FreeShippingThresh   decimal.Decimal `json:"free_shipping_threshold"`
	Epayum               json.RawMessage `json:"epayum,omitempty"`
	Fpx                  json.RawMessage `json:"fpx,omitempty"`
}

// ====================
// Converter
// ====================

func ToPaymentSettingsDTO(m model.PaymentSettingModel) PaymentSettingsDTO {
	var methods []string
	_ = json.Unmarshal(m.PaymentSettingActiveMethods, &methods)
	return PaymentSettingsDTO{
		ActivePaymentMethods: methods,
		TaxRate:              m.PaymentSettingTaxRate,
		Shipping: ShippingDTO{
			Fee:                   m.PaymentSettingShippingFee.Round(2).StringFixed(2),
			FreeShippingThreshold: m.PaymentSettingFreeShippingThreshold.Round(2).StringFixed(2),
		},
		Epayum: json.RawMessage(m.PaymentSettingEpayum),
		Fpx:    json.RawMessage(m.PaymentSettingFpx),
	}
}

func (r UpdatePaymentSettingsRequest) ToModel() model.PaymentSettingModel {
	methodsJSON, _ := json.Marshal(r.ActivePaymentMethods)
	return model.PaymentSettingModel{
		PaymentSettingActiveMethods:         datatypes.JSON(methodsJSON),
		PaymentSettingTaxRate:               r.TaxRate,
		PaymentSettingShippingFee:           r.ShippingFee,
		PaymentSettingFreeShippingThreshold: r.FreeShippingThresh,
		PaymentSettingEpayum:                datatypes.JSON(r.Epayum),
		PaymentSettingFpx:                   datatypes.JSON(r.Fpx),
	}
}

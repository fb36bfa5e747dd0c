package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/store/orders/dto"
	"tamilmandram_backend/internals/features/store/orders/model"
	"tamilmandram_backend/internals/features/store/orders/service"
	helper "tamilmandram_backend/internals/helpers"
)

type AdminOrderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminOrderController(db *gorm.DB) *AdminOrderController {
	return &AdminOrderController{DB: db, Validate: validator.New()}
}

// Sortable columns by query-string name. Anything else falls back to the
// submission date.
var orderSortColumns = map[string]string{
	"created_at":   "order_created_at",
	"updated_at":   "order_updated_at",
	"final_amount": "order_final_amount",
	"status":       "order_status",
	"customer":     "order_customer_name",
}

// filteredOrders applies the shared admin list filters: status,
// payment_status, and a case-insensitive search over customer name, email,
// order id and item titles (both languages).
func (ctrl *AdminOrderController) filteredOrders(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.Model(&model.OrderModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("order_status = ?", strings.ToLower(status))
	}
	if ps := strings.TrimSpace(c.Query("payment_status")); ps != "" {
		q = q.Where("order_payment_status = ?", strings.ToLower(ps))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			ctrl.DB.Where("LOWER(order_customer_name) LIKE ?", like).
				Or("LOWER(order_customer_email) LIKE ?", like).
				Or("order_id::text LIKE ?", like).
				Or("order_id IN (?)", ctrl.DB.Model(&model.OrderItemModel{}).
					Select("order_item_order_id").
					Where("LOWER(order_item_title->>'en') LIKE ? OR LOWER(order_item_title->>'ta') LIKE ?", like, like)),
		)
	}
	return q
}

// ======================
// GET / - paginated, filtered order list.
// ======================
func (ctrl *AdminOrderController) GetOrders(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	column := helper.SortColumn(orderSortColumns, p.SortBy, "order_created_at")

	base := ctrl.filteredOrders(c)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count orders")
	}

	var orders []model.OrderModel
	if err := base.Preload("Items").
		Order(fmt.Sprintf("%s %s", column, strings.ToUpper(p.SortOrder))).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.ToOrderDTOs(orders, lang),
		"pagination": fiber.Map{
			"page":        p.Page,
			"per_page":    p.PerPage,
			"total":       total,
			"total_pages": helper.TotalPages(total, p.PerPage),
		},
	})
}

// ======================
// GET /:id
// ======================
func (ctrl *AdminOrderController) GetOrderByID(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)

	var order model.OrderModel
	if err := ctrl.DB.Preload("Items").First(&order, "order_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Order not found")
	}
	return helper.Success(c, "OK", dto.ToOrderDTO(order, lang))
}

// ======================
// PUT /:id - partial update. Refused status/payment moves become no-ops
// reported in the response; metadata fields land regardless, so terminal
// orders still take tracking and refund edits.
// ======================
func (ctrl *AdminOrderController) UpdateOrder(c *fiber.Ctx) error {
	var body dto.AdminUpdateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var order model.OrderModel
	if err := ctrl.DB.Preload("Items").First(&order, "order_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Order not found")
	}

	rejected := service.ApplyAdminUpdate(&order, body)

	if err := ctrl.DB.Save(&order).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update order")
	}

	lang := c.Query("lang", helper.LangEnglish)
	data := fiber.Map{"order": dto.ToOrderDTO(order, lang)}
	if len(rejected) > 0 {
		data["rejected"] = rejected
	}
	return helper.Success(c, "Order updated", data)
}

// ======================
// DELETE /:id?confirm=true - destructive; an explicit confirm flag is the
// price of admission.
// ======================
func (ctrl *AdminOrderController) DeleteOrder(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return helper.Error(c, fiber.StatusBadRequest, "Deletion requires confirm=true")
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Order not found")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OrderItemModel{}, "order_item_order_id = ?", order.OrderID).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete order")
	}
	return helper.Success(c, "Order deleted", fiber.Map{"order_id": order.OrderID})
}

// ======================
// POST /bulk - fire-and-collect: every order is attempted, failures are
// reported per order id, one bad id never blocks the rest.
// ======================
func (ctrl *AdminOrderController) BulkUpdateOrders(c *fiber.Ctx) error {
	var body dto.BulkOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	target, err := service.BulkTarget(body.Action)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result := service.BulkResult{Failed: map[string]string{}}
	for _, id := range body.OrderIDs {
		var order model.OrderModel
		if err := ctrl.DB.First(&order, "order_id = ?", id).Error; err != nil {
			result.Failed[id] = "order not found"
			continue
		}
		if !service.CanTransition(order.OrderStatus, target) {
			result.Failed[id] = fmt.Sprintf("cannot move from %s to %s", order.OrderStatus, target)
			continue
		}
		if err := ctrl.DB.Model(&order).Update("order_status", target).Error; err != nil {
			result.Failed[id] = "update failed"
			continue
		}
		result.Updated = append(result.Updated, id)
	}

	return helper.Success(c, "Bulk action applied", result)
}

// ======================
// GET /stats - dashboard aggregates.
// ======================
func (ctrl *AdminOrderController) GetOrderStats(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)

	var orders []model.OrderModel
	if err := ctrl.DB.Preload("Items").Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	stats := service.ComputeStats(orders, lang)
	return helper.Success(c, "OK", fiber.Map{
		"total_orders":        stats.TotalOrders,
		"total_revenue":       stats.TotalRevenue.Round(2).StringFixed(2),
		"average_order_value": stats.AverageOrderValue.Round(2).StringFixed(2),
		"pending_count":       stats.PendingCount,
		"shipped_count":       stats.ShippedCount,
		"delivered_count":     stats.DeliveredCount,
		"cancelled_count":     stats.CancelledCount,
		"top_books":           stats.TopBooks,
	})
}

// ======================
// GET /export - CSV of the currently filtered view.
// ======================
func (ctrl *AdminOrderController) ExportOrders(c *fiber.Ctx) error {
	lang := c.Query("lang", helper.LangEnglish)

	var orders []model.OrderModel
	if err := ctrl.filteredOrders(c).Preload("Items").
		Order("order_created_at DESC").
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	data, err := service.ExportCSV(orders, lang)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

// OperationsHandler exposes the data operations directly, bypassing
// classification. Used by the dashboard and for scripting.
type OperationsHandler struct {
	ops ports.Operations
	log *zap.Logger
}

func NewOperationsHandler(ops ports.Operations, log *zap.Logger) *OperationsHandler {
	return &OperationsHandler{ops: ops, log: log}
}

type queryStockRequest struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

func (h *OperationsHandler) QueryStock(c *fiber.Ctx) error {
	var req queryStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	result := h.ops.GetStock(c.Context(), domain.EntitySet{
		SKU:   req.SKU,
		Name:  req.Name,
		Color: req.Color,
		Size:  req.Size,
	})
	return c.JSON(result)
}

type createReorderRequest struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

func (h *OperationsHandler) CreateReorder(c *fiber.Ctx) error {
	var req createReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	result := h.ops.CreateReorder(c.Context(), domain.EntitySet{
		ProductID: req.ProductID,
		SKU:       req.SKU,
		Quantity:  req.Quantity,
	})
	return c.JSON(result)
}

type salesSummaryRequest struct {
	WindowDays int `json:"window_days"`
}

func (h *OperationsHandler) GetSalesSummary(c *fiber.Ctx) error {
	var req salesSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	result := h.ops.GetSalesSummary(c.Context(), domain.EntitySet{WindowDays: req.WindowDays})
	return c.JSON(result)
}

type supplierInfoRequest struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
}

func (h *OperationsHandler) GetSupplierInfo(c *fiber.Ctx) error {
	var req supplierInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	result := h.ops.GetSupplierInfo(c.Context(), domain.EntitySet{
		ProductID: req.ProductID,
		SKU:       req.SKU,
	})
	return c.JSON(result)
}

type deliveryStatusRequest struct {
	ReorderID       string `json:"reorder_id"`
	PurchaseOrderID string `json:"purchase_order_id"`
}

func (h *OperationsHandler) GetDeliveryStatus(c *fiber.Ctx) error {
	var req deliveryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	result := h.ops.GetDeliveryStatus(c.Context(), domain.EntitySet{
		ReorderID:       req.ReorderID,
		PurchaseOrderID: req.PurchaseOrderID,
	})
	return c.JSON(result)
}

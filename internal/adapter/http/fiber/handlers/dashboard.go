package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

const (
	reorderListLimit   = 100
	voiceLogListLimit  = 50
	unknownProductName = "Unknown"
)

// DashboardHandler backs the read-only frontend views.
type DashboardHandler struct {
	tasks     ports.TaskRepository
	inventory ports.InventoryRepository
	voiceLogs ports.VoiceLogRepository
	log       *zap.Logger
}

func NewDashboardHandler(tasks ports.TaskRepository, inventory ports.InventoryRepository, voiceLogs ports.VoiceLogRepository, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		tasks:     tasks,
		inventory: inventory,
		voiceLogs: voiceLogs,
		log:       log,
	}
}

type reorderRow struct {
	TaskID         string `json:"task_id"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Category       string `json:"category"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	EmployeeName   string `json:"employee_name"`
	Status         string `json:"status"`
	AssignedDate   string `json:"assigned_date"`
	DueDate        string `json:"due_date"`
	CompletionDate string `json:"completion_date,omitempty"`
}

// ListReorders returns reorder tasks joined with their product details.
func (h *DashboardHandler) ListReorders(c *fiber.Ctx) error {
	tasks, err := h.tasks.FindReorders(c.Context(), reorderListLimit)
	if err != nil {
		h.log.Error("reorder listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "reorders": []reorderRow{}})
	}

	productIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if task.RelatedProduct != "" {
			productIDs = append(productIDs, task.RelatedProduct)
		}
	}

	productMap := map[string]domain.InventoryItem{}
	if len(productIDs) > 0 {
		products, err := h.inventory.FindByIDs(c.Context(), productIDs)
		if err != nil {
			h.log.Error("product lookup for reorders failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "reorders": []reorderRow{}})
		}
		for _, p := range products {
			productMap[p.ProductID] = p
		}
	}

	rows := make([]reorderRow, 0, len(tasks))
	for _, task := range tasks {
		row := reorderRow{
			TaskID:       task.TaskID,
			ProductID:    task.RelatedProduct,
			ProductName:  unknownProductName,
			EmployeeName: task.EmployeeName,
			Status:       task.Status,
			AssignedDate: task.AssignedDate.Format("2006-01-02"),
			DueDate:      task.DueDate.Format("2006-01-02"),
		}
		if row.Status == "" {
			row.Status = domain.TaskStatusPending
		}
		if task.CompletionDate != nil {
			row.CompletionDate = task.CompletionDate.Format("2006-01-02")
		}
		if product, ok := productMap[task.RelatedProduct]; ok {
			row.ProductName = product.Name
			row.Category = product.Category
			row.Color = product.Color
			row.Size = product.Size
		}
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{"reorders": rows})
}

// ListVoiceLogs returns the most recent webhook interactions.
func (h *DashboardHandler) ListVoiceLogs(c *fiber.Ctx) error {
	limit := voiceLogListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	logs, err := h.voiceLogs.FindRecent(c.Context(), limit)
	if err != nil {
		h.log.Error("voice log listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "logs": []domain.VoiceLog{}})
	}
	return c.JSON(fiber.Map{"logs": logs})
}

// Command loader bulk-imports the retail CSV datasets into Postgres.
// Unknown CSV columns are ignored so exports with extra fields load
// without modification.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/adapter/storage/postgres"
	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

const batchSize = 500

var (
	dataDir     = flag.String("data", "./data", "Directory containing the CSV files")
	databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *databaseURL == "" {
		logger.Fatal("No database URL; set --database-url or DATABASE_URL")
	}

	db, err := postgres.NewConnection(*databaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	ctx := context.Background()

	inventoryRepo := postgres.NewInventoryRepository(db, logger)
	taskRepo := postgres.NewTaskRepository(db, logger)
	salesRepo := postgres.NewSalesRepository(db, logger)
	supplierRepo := postgres.NewSupplierOrderRepository(db, logger)

	if err := loadInventory(ctx, inventoryRepo, filepath.Join(*dataDir, "clothing_retail_inventory.csv"), logger); err != nil {
		logger.Fatal("Inventory load failed", zap.Error(err))
	}
	if err := loadTasks(ctx, taskRepo, filepath.Join(*dataDir, "employee_task_logs.csv"), logger); err != nil {
		logger.Fatal("Task load failed", zap.Error(err))
	}
	if err := loadSales(ctx, salesRepo, filepath.Join(*dataDir, "retail_sales_transactions.csv"), logger); err != nil {
		logger.Fatal("Sales load failed", zap.Error(err))
	}
	if err := loadSupplierOrders(ctx, supplierRepo, filepath.Join(*dataDir, "supplier_purchase_orders.csv"), logger); err != nil {
		logger.Fatal("Supplier order load failed", zap.Error(err))
	}

	logger.Info("All datasets loaded")
}

// record is one CSV row addressed by column name. Missing columns and
// empty cells both read as the zero value.
type record struct {
	header map[string]int
	row    []string
}

func (r *record) str(col string) string {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[idx])
}

func (r *record) intval(col string) int {
	n, _ := strconv.Atoi(r.str(col))
	return n
}

func (r *record) floatval(col string) float64 {
	f, _ := strconv.ParseFloat(r.str(col), 64)
	return f
}

func (r *record) dateval(col string) time.Time {
	t, _ := time.Parse("2006-01-02", r.str(col))
	return t
}

func (r *record) datePtr(col string) *time.Time {
	raw := r.str(col)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// forEachRecord streams a CSV file calling fn per data row.
func forEachRecord(path string, fn func(*record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	header := make(map[string]int, len(headerRow))
	for i, col := range headerRow {
		header[strings.TrimSpace(col)] = i
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row of %s: %w", path, err)
		}
		if err := fn(&record{header: header, row: row}); err != nil {
			return err
		}
	}
}

func loadInventory(ctx context.Context, repo ports.InventoryRepository, path string, log *zap.Logger) error {
	var batch []domain.InventoryItem
	total := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repo.SaveBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err := forEachRecord(path, func(r *record) error {
		batch = append(batch, domain.InventoryItem{
			ProductID:        r.str("product_id"),
			Name:             r.str("name"),
			Category:         r.str("category"),
			SubCategory:      r.str("sub_category"),
			Color:            r.str("color"),
			Size:             r.str("size"),
			StockQuantity:    r.intval("stock_quantity"),
			ReorderThreshold: r.intval("reorder_threshold"),
			Location:         r.str("location"),
			SellingPrice:     r.floatval("selling_price"),
			SupplierID:       r.str("supplier_id"),
		})
		if len(batch) >= batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	log.Info("Loaded inventory", zap.Int("rows", total))
	return nil
}

func loadTasks(ctx context.Context, repo ports.TaskRepository, path string, log *zap.Logger) error {
	var batch []domain.ReorderTask
	total := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repo.SaveBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err := forEachRecord(path, func(r *record) error {
		batch = append(batch, domain.ReorderTask{
			TaskID:         r.str("task_id"),
			EmployeeName:   r.str("employee_name"),
			EmployeeRole:   r.str("employee_role"),
			TaskType:       r.str("task_type"),
			AssignedDate:   r.dateval("assigned_date"),
			DueDate:        r.dateval("due_date"),
			CompletionDate: r.datePtr("completion_date"),
			Status:         r.str("status"),
			RelatedProduct: r.str("related_product"),
		})
		if len(batch) >= batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	log.Info("Loaded employee tasks", zap.Int("rows", total))
	return nil
}

func loadSales(ctx context.Context, repo ports.SalesRepository, path string, log *zap.Logger) error {
	var batch []domain.SalesTransaction
	total := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repo.SaveBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err := forEachRecord(path, func(r *record) error {
		batch = append(batch, domain.SalesTransaction{
			TransactionID: r.str("sale_id"),
			ProductID:     r.str("product_id"),
			SaleDate:      r.dateval("sale_date"),
			QuantitySold:  r.intval("quantity_sold"),
			UnitPrice:     r.floatval("unit_price"),
			Revenue:       r.floatval("revenue"),
			StoreLocation: r.str("city"),
		})
		if len(batch) >= batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	log.Info("Loaded sales transactions", zap.Int("rows", total))
	return nil
}

func loadSupplierOrders(ctx context.Context, repo ports.SupplierOrderRepository, path string, log *zap.Logger) error {
	var batch []domain.SupplierOrder
	total := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := repo.SaveBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err := forEachRecord(path, func(r *record) error {
		batch = append(batch, domain.SupplierOrder{
			PurchaseOrderID:           r.str("purchase_order_id"),
			SupplierID:                r.str("supplier_id"),
			SupplierName:              r.str("supplier_name"),
			ContactName:               r.str("contact_name"),
			ContactEmail:              r.str("contact_email"),
			PhoneNumber:               r.str("phone_number"),
			City:                      r.str("city"),
			State:                     r.str("state"),
			ProductCategoriesSupplied: r.str("product_categories_supplied"),
			OrderDate:                 r.dateval("order_date"),
			DeliveryDate:              r.datePtr("delivery_date"),
			Status:                    domain.OrderStatus(r.str("status")),
			TotalCost:                 r.floatval("total_cost"),
			PaymentStatus:             r.str("payment_status"),
		})
		if len(batch) >= batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	log.Info("Loaded supplier orders", zap.Int("rows", total))
	return nil
}

// Package speech turns operation results into short spoken sentences
// in the language the device asked for.
package speech

import (
	"fmt"
	"strings"

	"github.com/voxretail/assistant/internal/domain"
)

// Lookup resolves a phrase key for a language. Unknown languages fall
// back to English; a key missing from both tables comes back verbatim
// so a bad key degrades to something visible instead of empty speech.
func Lookup(language, key string) string {
	lang := strings.ToLower(language)
	if _, ok := translations[lang]; !ok {
		lang = DefaultLanguage
	}
	if phrase, ok := translations[lang][key]; ok {
		return phrase
	}
	if phrase, ok := translations[DefaultLanguage][key]; ok {
		return phrase
	}
	return key
}

// Generator renders the speech field of a response envelope.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate builds a spoken sentence for an operation result. It never
// returns an empty string.
func (g *Generator) Generate(intent string, result domain.OperationResult, language string) string {
	lang := strings.ToLower(language)
	if lang == "" {
		lang = DefaultLanguage
	}

	switch intent {
	case domain.IntentGetStock:
		return g.stockSpeech(result, lang)
	case domain.IntentCreateReorder:
		return g.reorderSpeech(result, lang)
	case domain.IntentGetSalesSummary:
		return g.salesSpeech(result, lang)
	case domain.IntentGetSupplierInfo:
		return g.supplierSpeech(result, lang)
	case domain.IntentGetDeliveryStatus:
		return g.deliverySpeech(result, lang)
	}
	return Lookup(lang, "request_success")
}

// ErrorSpeech renders the envelope speech for requests that never made
// it to an operation.
func (g *Generator) ErrorSpeech(kind domain.ErrorKind, language string) string {
	switch kind {
	case domain.ErrorInvalidInput:
		return Lookup(language, "error_parse")
	case domain.ErrorNotFound:
		return Lookup(language, "error_unknown_intent")
	default:
		return Lookup(language, "error_generic")
	}
}

func (g *Generator) stockSpeech(result domain.OperationResult, lang string) string {
	if result.IsFailure() {
		return Lookup(lang, "error_not_found")
	}
	payload, ok := result.Payload.(domain.StockResult)
	if !ok || len(payload.Items) == 0 {
		return Lookup(lang, "no_products")
	}

	if len(payload.Items) == 1 {
		item := payload.Items[0]
		name := item.Name
		if name == "" {
			name = "item"
		}
		if lang == "en" {
			name += "s"
		}

		parts := []string{
			Lookup(lang, "stock_prefix"),
			fmt.Sprintf("%d", item.Quantity),
			name,
		}
		if item.Color != "" {
			parts = append(parts, Lookup(lang, "stock_color_prefix"), item.Color)
		}
		if item.Size != "" {
			parts = append(parts, Lookup(lang, "stock_size_prefix"), item.Size)
		}
		parts = append(parts, Lookup(lang, "stock_suffix"))

		sentence := strings.Join(parts, " ")
		if item.LowStock {
			sentence += " " + Lookup(lang, "low_stock_warning")
		}
		return sentence
	}

	total := 0
	for _, item := range payload.Items {
		total += item.Quantity
	}
	return fmt.Sprintf(Lookup(lang, "stock_multiple"), len(payload.Items), total)
}

func (g *Generator) reorderSpeech(result domain.OperationResult, lang string) string {
	if result.IsFailure() {
		if result.Failure.Kind == domain.ErrorNotFound {
			return Lookup(lang, "error_not_found")
		}
		if result.Failure.Message != "" {
			return fmt.Sprintf("%s: %s", Lookup(lang, "error_reorder"), result.Failure.Message)
		}
		return Lookup(lang, "error_reorder")
	}
	payload, ok := result.Payload.(domain.ReorderResult)
	if !ok {
		return Lookup(lang, "error_reorder")
	}

	name := payload.ProductName
	if name == "" {
		if lang == "es" {
			name = "artículos"
		} else {
			name = "items"
		}
	}
	status := payload.Status
	if status == "" {
		status = "pending"
	}
	return fmt.Sprintf(Lookup(lang, "reorder_success"), payload.TaskID, payload.Quantity, name, status)
}

func (g *Generator) salesSpeech(result domain.OperationResult, lang string) string {
	if result.IsFailure() {
		return Lookup(lang, "error_sales")
	}
	payload, ok := result.Payload.(domain.SalesSummaryResult)
	if !ok {
		return Lookup(lang, "error_sales")
	}
	parts := []string{
		fmt.Sprintf(Lookup(lang, "sales_prefix"), payload.WindowDays),
		fmt.Sprintf(Lookup(lang, "sales_sold"), payload.TotalQuantity),
		fmt.Sprintf(Lookup(lang, "sales_revenue"), payload.TotalRevenue),
	}
	return strings.Join(parts, " ")
}

func (g *Generator) supplierSpeech(result domain.OperationResult, lang string) string {
	if result.IsFailure() {
		return Lookup(lang, "error_supplier")
	}
	payload, ok := result.Payload.(domain.SupplierInfoResult)
	if !ok {
		return Lookup(lang, "error_supplier")
	}

	name := payload.SupplierName
	if name == "" {
		name = payload.SupplierID
	}
	sentence := fmt.Sprintf(Lookup(lang, "supplier_info"), name)

	contact := payload.ContactName
	if contact == "" {
		contact = payload.ContactEmail
	}
	if contact != "" {
		sentence += " " + fmt.Sprintf(Lookup(lang, "supplier_contact"), contact)
	}
	return sentence
}

func (g *Generator) deliverySpeech(result domain.OperationResult, lang string) string {
	if result.IsFailure() {
		return Lookup(lang, "error_delivery")
	}
	payload, ok := result.Payload.(domain.DeliveryStatusResult)
	if !ok || len(payload.Orders) == 0 {
		return Lookup(lang, "error_delivery")
	}

	order := payload.Orders[0]
	status := order.Status
	if status == "" {
		status = "unknown"
	}
	sentence := fmt.Sprintf(Lookup(lang, "delivery_status"), order.PurchaseOrderID, status)
	if order.DeliveryDate != "" {
		sentence += " " + fmt.Sprintf(Lookup(lang, "delivery_eta"), order.DeliveryDate)
	}
	if len(payload.Orders) > 1 {
		sentence += " " + fmt.Sprintf(Lookup(lang, "delivery_more"), len(payload.Orders)-1)
	}
	return sentence
}

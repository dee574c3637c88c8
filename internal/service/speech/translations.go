package speech

// DefaultLanguage is the terminal fallback of the phrase lookup chain.
const DefaultLanguage = "en"

// translations holds the per-language phrase tables. Template phrases
// use fmt verbs; the Generate branches know the argument order.
var translations = map[string]map[string]string{
	"en": {
		"error_generic":        "I'm sorry, something went wrong while processing your request.",
		"error_parse":          "I'm sorry, I couldn't understand your request. Please try again.",
		"error_unknown_intent": "I'm sorry, I don't know how to handle that type of request.",
		"error_not_found":      "I couldn't find that product.",
		"error_reorder":        "I couldn't create that reorder.",
		"error_sales":          "I couldn't retrieve sales data.",
		"error_supplier":       "I couldn't find supplier information.",
		"error_delivery":       "I couldn't find delivery information.",
		"no_products":          "No products found matching your criteria.",
		"low_stock_warning":    "This product is running low and needs restocking.",
		"stock_prefix":         "There are",
		"stock_suffix":         "in stock.",
		"stock_color_prefix":   "in",
		"stock_size_prefix":    "size",
		"stock_multiple":       "Found %d matching products with a total quantity of %d.",
		"reorder_success":      "Created reorder %s for %d %s. Status: %s",
		"sales_prefix":         "In the last %d days,",
		"sales_sold":           "you sold %d items",
		"sales_revenue":        "with total revenue of $%.2f",
		"supplier_info":        "The supplier is %s.",
		"supplier_contact":     "You can reach them at %s.",
		"delivery_status":      "Order %s status is %s.",
		"delivery_eta":         "Expected delivery date is %s.",
		"delivery_more":        "There are %d more open orders.",
		"request_success":      "Request processed successfully.",
	},
	"es": {
		"error_generic":        "Lo siento, algo salió mal al procesar tu solicitud.",
		"error_parse":          "Lo siento, no pude entender tu solicitud. Por favor, inténtalo de nuevo.",
		"error_unknown_intent": "Lo siento, no sé cómo manejar ese tipo de solicitud.",
		"error_not_found":      "No pude encontrar ese producto.",
		"error_reorder":        "No pude crear esa reorden.",
		"error_sales":          "No pude recuperar los datos de ventas.",
		"error_supplier":       "No pude encontrar información del proveedor.",
		"error_delivery":       "No pude encontrar información de entrega.",
		"no_products":          "No se encontraron productos que coincidan con tus criterios.",
		"low_stock_warning":    "Este producto se está agotando y necesita reabastecimiento.",
		"stock_prefix":         "Hay",
		"stock_suffix":         "en stock.",
		"stock_color_prefix":   "en",
		"stock_size_prefix":    "talla",
		"stock_multiple":       "Se encontraron %d productos que coinciden con una cantidad total de %d.",
		"reorder_success":      "Reorden %s creada para %d %s. Estado: %s",
		"sales_prefix":         "En los últimos %d días,",
		"sales_sold":           "vendiste %d artículos",
		"sales_revenue":        "con un ingreso total de $%.2f",
		"supplier_info":        "El proveedor es %s.",
		"supplier_contact":     "Puedes contactarlos en %s.",
		"delivery_status":      "El estado del pedido %s es %s.",
		"delivery_eta":         "La fecha de entrega esperada es %s.",
		"delivery_more":        "Hay %d pedidos abiertos más.",
		"request_success":      "Solicitud procesada exitosamente.",
	},
}

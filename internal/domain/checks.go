package domain

// Quality check names, as written to the finding log.
const (
	CheckMissingCustomerEmail     = "missing_customer_email"
	CheckMissingCustomerPhone     = "missing_customer_phone"
	CheckMissingProductCategory   = "missing_product_category"
	CheckDeliveredWithoutShipDate = "delivered_without_ship_date"

	CheckNegativePriceOrCost  = "negative_price_or_cost"
	CheckUnprofitableProducts = "unprofitable_products"
	CheckShipBeforeOrder      = "ship_before_order"
	CheckNegativeStock        = "negative_stock"
	CheckInvalidEmailFormat   = "invalid_email_format"

	CheckExcessiveDiscount     = "excessive_discount"
	CheckNonPositiveOrderTotal = "non_positive_order_total"
	CheckOrdersWithoutItems    = "orders_without_items"
	CheckBulkQuantityItems     = "bulk_quantity_items"

	CheckOrphanItemsOrder      = "orphan_items_order"
	CheckOrphanItemsProduct    = "orphan_items_product"
	CheckOrdersMissingCustomer = "orders_missing_customer"

	CheckOrderTotalAnomaly       = "order_total_anomaly"
	CheckDuplicateCustomerEmails = "duplicate_customer_emails"
	CheckOutOfStockRecentOrders  = "out_of_stock_recent_orders"
)

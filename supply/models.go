// Package supply define os modelos e stores do domínio de supply chain,
// construídos sobre os wrappers AWS do toolkit (dyndb, snspub).
package supply

// Supplier é um fornecedor cadastrado.
type Supplier struct {
	ID     string `dynamodbav:"supplier_id" json:"supplier_id"`
	Name   string `dynamodbav:"name" json:"name"`
	Email  string `dynamodbav:"email" json:"email"`
	Active bool   `dynamodbav:"active" json:"active"`
}

// RawMaterial é uma matéria-prima fornecida por um Supplier.
type RawMaterial struct {
	ID         string  `dynamodbav:"material_id" json:"material_id"`
	SupplierID string  `dynamodbav:"supplier_id" json:"supplier_id"`
	Name       string  `dynamodbav:"name" json:"name"`
	UnitPrice  float64 `dynamodbav:"unit_price" json:"unit_price"`
	Quantity   int     `dynamodbav:"quantity" json:"quantity"`
}

// FinishedProduct é um produto acabado disponível para distribuição.
type FinishedProduct struct {
	ID           string  `dynamodbav:"product_id" json:"product_id"`
	Name         string  `dynamodbav:"name" json:"name"`
	Price        float64 `dynamodbav:"price" json:"price"`
	Quantity     int     `dynamodbav:"quantity" json:"quantity"`
	ReorderLevel int     `dynamodbav:"reorder_level" json:"reorder_level"`
}

// PurchaseOrder é um pedido de compra de matéria-prima.
type PurchaseOrder struct {
	ID         string  `dynamodbav:"po_id" json:"po_id"`
	SupplierID string  `dynamodbav:"supplier_id" json:"supplier_id"`
	MaterialID string  `dynamodbav:"material_id" json:"material_id"`
	Quantity   int     `dynamodbav:"quantity" json:"quantity"`
	Total      float64 `dynamodbav:"total" json:"total"`
	Status     string  `dynamodbav:"status" json:"status"`
	CreatedAt  string  `dynamodbav:"created_at" json:"created_at"`
}

// Distributor é um distribuidor atendido pela fábrica.
type Distributor struct {
	ID    string `dynamodbav:"distributor_id" json:"distributor_id"`
	Name  string `dynamodbav:"name" json:"name"`
	Email string `dynamodbav:"email" json:"email"`
}

// DistributorOrder é um pedido de produto acabado feito por um distribuidor.
type DistributorOrder struct {
	ID            string `dynamodbav:"order_id" json:"order_id"`
	DistributorID string `dynamodbav:"distributor_id" json:"distributor_id"`
	ProductID     string `dynamodbav:"product_id" json:"product_id"`
	Quantity      int    `dynamodbav:"quantity" json:"quantity"`
	Status        string `dynamodbav:"status" json:"status"`
	TrackingID    string `dynamodbav:"tracking_id" json:"tracking_id"`
}

// InventoryItem é o estoque de um produto em um distribuidor. A chave é a
// composição "distributorID#productID".
type InventoryItem struct {
	ID       string `dynamodbav:"id" json:"id"`
	Quantity int    `dynamodbav:"quantity" json:"quantity"`
}

// CustomerOrder é um pedido final de cliente junto a um distribuidor.
type CustomerOrder struct {
	ID            string `dynamodbav:"order_id" json:"order_id"`
	DistributorID string `dynamodbav:"distributor_id" json:"distributor_id"`
	ProductID     string `dynamodbav:"product_id" json:"product_id"`
	CustomerEmail string `dynamodbav:"customer_email" json:"customer_email"`
	Quantity      int    `dynamodbav:"quantity" json:"quantity"`
	Status        string `dynamodbav:"status" json:"status"`
}

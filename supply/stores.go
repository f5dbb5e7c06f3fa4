package supply

import (
	"context"
	"fmt"

	"github.com/raywall/supplychain-toolkit/dyndb"
	"github.com/raywall/supplychain-toolkit/faults"
	"github.com/raywall/supplychain-toolkit/pkg/config"
	"github.com/raywall/supplychain-toolkit/pkg/metrics"
)

// Stores agrupa um store tipado por tabela do domínio, todos compartilhando
// o mesmo cliente DynamoDB. As operações de domínio emitem métricas via
// provider (noop por padrão; use WithMetrics para trocar).
type Stores struct {
	Suppliers         dyndb.Store[Supplier]
	RawMaterials      dyndb.Store[RawMaterial]
	FinishedProducts  dyndb.Store[FinishedProduct]
	PurchaseOrders    dyndb.Store[PurchaseOrder]
	Distributors      dyndb.Store[Distributor]
	DistributorOrders dyndb.Store[DistributorOrder]
	Inventory         dyndb.Store[InventoryItem]
	CustomerOrders    dyndb.Store[CustomerOrder]

	metrics metrics.Provider
}

// NewStores monta os stores a partir da configuração de tabelas.
func NewStores(client dyndb.DynamoDBClient, tables config.TablesConf) *Stores {
	return &Stores{
		Suppliers:         dyndb.New[Supplier](client, dyndb.TableConfig{TableName: tables.Suppliers, HashKey: "supplier_id"}),
		RawMaterials:      dyndb.New[RawMaterial](client, dyndb.TableConfig{TableName: tables.RawMaterials, HashKey: "material_id"}),
		FinishedProducts:  dyndb.New[FinishedProduct](client, dyndb.TableConfig{TableName: tables.FinishedProducts, HashKey: "product_id"}),
		PurchaseOrders:    dyndb.New[PurchaseOrder](client, dyndb.TableConfig{TableName: tables.PurchaseOrders, HashKey: "po_id"}),
		Distributors:      dyndb.New[Distributor](client, dyndb.TableConfig{TableName: tables.Distributors, HashKey: "distributor_id"}),
		DistributorOrders: dyndb.New[DistributorOrder](client, dyndb.TableConfig{TableName: tables.DistributorOrders, HashKey: "order_id"}),
		Inventory:         dyndb.New[InventoryItem](client, dyndb.TableConfig{TableName: tables.DistributorInventory, HashKey: "id"}),
		CustomerOrders:    dyndb.New[CustomerOrder](client, dyndb.TableConfig{TableName: tables.CustomerOrders, HashKey: "order_id"}),
		metrics:           metrics.NoopProvider{},
	}
}

// WithMetrics troca o provider de métricas das operações de domínio.
func (s *Stores) WithMetrics(provider metrics.Provider) *Stores {
	s.metrics = provider
	return s
}

// ListActiveSuppliers varre a tabela de fornecedores e devolve os ativos.
func (s *Stores) ListActiveSuppliers(ctx context.Context) ([]Supplier, error) {
	var active []Supplier
	err := metrics.Instrument(s.metrics, "dynamodb", "ListActiveSuppliers", func() error {
		pager := s.Suppliers.Scan().FilterEqual("active", true).Pages()
		for pager.HasMore() {
			page, err := pager.Next(ctx)
			if err != nil {
				return err
			}
			active = append(active, page...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return active, nil
}

// RawMaterialsForSupplier devolve as matérias-primas de um fornecedor.
func (s *Stores) RawMaterialsForSupplier(ctx context.Context, supplierID string) ([]RawMaterial, error) {
	if supplierID == "" {
		return nil, faults.Invalid("dynamodb", "RawMaterials", "supplier id obrigatório")
	}

	var materials []RawMaterial
	err := metrics.Instrument(s.metrics, "dynamodb", "RawMaterialsForSupplier", func() error {
		pager := s.RawMaterials.Scan().FilterEqual("supplier_id", supplierID).Pages()
		for pager.HasMore() {
			page, err := pager.Next(ctx)
			if err != nil {
				return err
			}
			materials = append(materials, page...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// InventoryKey compõe a chave de estoque "distributorID#productID".
func InventoryKey(distributorID, productID string) string {
	return fmt.Sprintf("%s#%s", distributorID, productID)
}

// AddStock incrementa atomicamente o estoque de um produto em um
// distribuidor, inicializando em zero quando o item não existe.
func (s *Stores) AddStock(ctx context.Context, distributorID, productID string, quantity int) error {
	if distributorID == "" || productID == "" {
		return faults.Invalid("dynamodb", "DistributorInventory", "distributor id e product id são obrigatórios")
	}

	return metrics.Instrument(s.metrics, "dynamodb", "AddStock", func() error {
		return s.Inventory.UpdateExpr(ctx,
			InventoryKey(distributorID, productID), nil,
			"SET quantity = if_not_exists(quantity, :z) + :q",
			map[string]any{":q": quantity, ":z": 0},
			nil,
		)
	})
}

// StockOf devolve a quantidade em estoque; item inexistente conta como zero.
func (s *Stores) StockOf(ctx context.Context, distributorID, productID string) (int, error) {
	var quantity int
	err := metrics.Instrument(s.metrics, "dynamodb", "StockOf", func() error {
		item, err := s.Inventory.Get(ctx, InventoryKey(distributorID, productID), nil)
		if err != nil {
			if faults.IsNotFound(err) {
				return nil
			}
			return err
		}
		quantity = item.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

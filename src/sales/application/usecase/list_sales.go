package usecase

import (
	"fmt"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/response"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	"golang.org/x/sync/errgroup"
)

// ListSalesUseCase arma el listado de ventas enriquecidas.
// El backend devuelve tres colecciones planas sin join; acá se hace el
// fan-out de GETs independientes y la derivación pura sobre los
// snapshots ya resueltos. El orden de llegada de los fetches no puede
// corromper el resultado porque nunca se deriva sobre snapshots parciales.
type ListSalesUseCase struct {
	salesClient *client.SalesClient
}

// NewListSalesUseCase crea una nueva instancia del caso de uso.
func NewListSalesUseCase(salesClient *client.SalesClient) *ListSalesUseCase {
	return &ListSalesUseCase{salesClient: salesClient}
}

// Execute obtiene los snapshots y devuelve las ventas enriquecidas,
// una por venta de entrada y en el mismo orden.
func (uc *ListSalesUseCase) Execute() ([]response.EnrichedSaleResponse, error) {
	var (
		sales     []entity.Sale
		itemSales []entity.SaleLineItem
		products  []entity.Product
		customers []entity.Customer
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		sales, err = uc.salesClient.GetSales()
		return err
	})
	g.Go(func() error {
		var err error
		itemSales, err = uc.salesClient.GetItemSales()
		return err
	})
	g.Go(func() error {
		var err error
		products, err = uc.salesClient.GetProducts()
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = uc.salesClient.GetCustomers()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error fetching sales snapshots: %w", err)
	}

	customerName := make(map[string]string, len(customers))
	for _, c := range customers {
		customerName[c.CustomerID] = c.Name
	}

	enriched := entity.EnrichSales(sales, itemSales, products)

	result := make([]response.EnrichedSaleResponse, 0, len(enriched))
	for _, sale := range enriched {
		name, ok := customerName[sale.CustomerID]
		if !ok {
			name = "Unknown"
		}
		result = append(result, response.EnrichedSaleResponse{
			SaleID:         sale.SaleID,
			SaleDate:       sale.SaleDate,
			CustomerID:     sale.CustomerID,
			CustomerName:   name,
			PurchasedItems: sale.PurchasedItems,
			Total:          sale.Total,
		})
	}

	return result, nil
}

package usecase

import (
	"fmt"
	"log"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/response"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/cache"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/store"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/metrics"
	"github.com/asaskevich/EventBus"
)

// EventSaleCreated se publica en el bus después de cada venta creada.
const EventSaleCreated = "sale:created"

// SubmitSaleUseCase valida el borrador, arma el payload exacto que espera
// POST /Sales y lo envía como una única transacción opaca.
// Flujo:
//  1. Validar campos obligatorios (reporta TODOS los faltantes).
//  2. Construir el payload {saleData, items, payment_method_id}.
//  3. Enviar. Si el backend falla, el borrador queda intacto para reintentar.
//  4. Si el backend acepta: reset del borrador a vacío y publicación del
//     evento para que los interesados invaliden sus snapshots.
type SubmitSaleUseCase struct {
	drafts      *store.DraftStore
	salesClient *client.SalesClient
	methodCache *cache.PaymentMethodCache
	bus         EventBus.Bus
}

// NewSubmitSaleUseCase crea una nueva instancia del caso de uso.
func NewSubmitSaleUseCase(
	drafts *store.DraftStore,
	salesClient *client.SalesClient,
	methodCache *cache.PaymentMethodCache,
	bus EventBus.Bus,
) *SubmitSaleUseCase {
	return &SubmitSaleUseCase{
		drafts:      drafts,
		salesClient: salesClient,
		methodCache: methodCache,
		bus:         bus,
	}
}

// Execute envía el borrador. Devuelve *entity.DraftValidationError cuando
// faltan campos obligatorios; cualquier otro error es de transporte/backend.
func (uc *SubmitSaleUseCase) Execute(draftID string) (*response.SubmitResponse, error) {
	var submitted *response.SubmitResponse

	err := uc.drafts.With(draftID, func(draft *entity.OrderDraft) error {
		if err := draft.Validate(); err != nil {
			return err
		}

		items := make([]request.SaleItemPayload, 0, len(draft.Items))
		for _, item := range draft.Items {
			items = append(items, request.SaleItemPayload{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		payload := &request.SalePayload{
			SaleData:        request.SaleData{CustomerID: draft.CustomerID},
			Items:           items,
			PaymentMethodID: draft.PaymentMethodID,
		}

		if err := uc.salesClient.CreateSale(payload); err != nil {
			// El borrador se preserva tal cual para que el usuario
			// reintente sin recargar nada.
			return fmt.Errorf("error creating sale: %w", err)
		}

		methodName := "Unknown"
		if uc.methodCache != nil {
			methodName = uc.methodCache.GetName(draft.PaymentMethodID)
		}
		submitted = &response.SubmitResponse{
			DraftID:           draft.ID,
			ItemsSubmitted:    len(items),
			PaymentMethodName: methodName,
		}

		draft.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SalesCreated.Inc()
	log.Printf("✅ Sale created from draft %s (%d items)", submitted.DraftID, submitted.ItemsSubmitted)

	if uc.bus != nil {
		uc.bus.Publish(EventSaleCreated, submitted.DraftID)
	}

	return submitted, nil
}

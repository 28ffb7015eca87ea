package usecase

import (
	"fmt"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/request"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/application/response"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/store"
)

// CreateDraftUseCase abre una sesión de "nueva venta": borrador vacío.
type CreateDraftUseCase struct {
	drafts *store.DraftStore
}

// NewCreateDraftUseCase crea una nueva instancia del caso de uso.
func NewCreateDraftUseCase(drafts *store.DraftStore) *CreateDraftUseCase {
	return &CreateDraftUseCase{drafts: drafts}
}

// Execute crea el borrador y devuelve su vista inicial.
func (uc *CreateDraftUseCase) Execute() response.DraftResponse {
	return response.NewDraftResponse(uc.drafts.Create())
}

// UpdateDraftUseCase aplica cambios de campos sueltos al borrador:
// cliente, método de pago y la selección de producto/cantidad actual.
// No valida al setear; la validación completa ocurre en el submit.
type UpdateDraftUseCase struct {
	drafts *store.DraftStore
}

// NewUpdateDraftUseCase crea una nueva instancia del caso de uso.
func NewUpdateDraftUseCase(drafts *store.DraftStore) *UpdateDraftUseCase {
	return &UpdateDraftUseCase{drafts: drafts}
}

// Execute aplica los campos presentes del request sobre el borrador.
func (uc *UpdateDraftUseCase) Execute(draftID string, req *request.UpdateDraftRequest) (response.DraftResponse, error) {
	err := uc.drafts.With(draftID, func(draft *entity.OrderDraft) error {
		if req.CustomerID != nil {
			draft.SetCustomer(*req.CustomerID)
		}
		if req.PaymentMethodID != nil {
			draft.SetPaymentMethod(*req.PaymentMethodID)
		}
		if req.SelectedProduct != nil || req.SelectedQuantity != nil {
			productID := draft.Selection.ProductID
			quantity := draft.Selection.Quantity
			if req.SelectedProduct != nil {
				productID = *req.SelectedProduct
			}
			if req.SelectedQuantity != nil {
				quantity = *req.SelectedQuantity
			}
			draft.Select(productID, quantity)
		}
		return nil
	})
	if err != nil {
		return response.DraftResponse{}, err
	}

	snapshot, err := uc.drafts.Snapshot(draftID)
	if err != nil {
		return response.DraftResponse{}, err
	}
	return response.NewDraftResponse(snapshot), nil
}

// AddDraftItemUseCase agrega un item al borrador validándolo contra el
// snapshot de productos recién traído del backend. El stock local nunca
// se descuenta: dos agregados seguidos validan contra el mismo stock
// reportado hasta que un submit exitoso fuerce el re-fetch.
type AddDraftItemUseCase struct {
	drafts      *store.DraftStore
	salesClient *client.SalesClient
}

// NewAddDraftItemUseCase crea una nueva instancia del caso de uso.
func NewAddDraftItemUseCase(drafts *store.DraftStore, salesClient *client.SalesClient) *AddDraftItemUseCase {
	return &AddDraftItemUseCase{drafts: drafts, salesClient: salesClient}
}

// Execute valida y agrega el item. Un rechazo de validación deja el
// borrador exactamente como estaba.
func (uc *AddDraftItemUseCase) Execute(draftID string, req *request.AddItemRequest) (response.DraftResponse, error) {
	products, err := uc.salesClient.GetProducts()
	if err != nil {
		return response.DraftResponse{}, fmt.Errorf("error fetching product snapshot: %w", err)
	}

	err = uc.drafts.With(draftID, func(draft *entity.OrderDraft) error {
		return draft.AddItem(products, req.ProductID, req.Quantity)
	})
	if err != nil {
		return response.DraftResponse{}, err
	}

	snapshot, err := uc.drafts.Snapshot(draftID)
	if err != nil {
		return response.DraftResponse{}, err
	}
	return response.NewDraftResponse(snapshot), nil
}

// RemoveDraftItemUseCase quita el item en la posición dada.
type RemoveDraftItemUseCase struct {
	drafts *store.DraftStore
}

// NewRemoveDraftItemUseCase crea una nueva instancia del caso de uso.
func NewRemoveDraftItemUseCase(drafts *store.DraftStore) *RemoveDraftItemUseCase {
	return &RemoveDraftItemUseCase{drafts: drafts}
}

// Execute remueve el item; índice fuera de rango es no-op.
func (uc *RemoveDraftItemUseCase) Execute(draftID string, index int) (response.DraftResponse, error) {
	err := uc.drafts.With(draftID, func(draft *entity.OrderDraft) error {
		draft.RemoveItem(index)
		return nil
	})
	if err != nil {
		return response.DraftResponse{}, err
	}

	snapshot, err := uc.drafts.Snapshot(draftID)
	if err != nil {
		return response.DraftResponse{}, err
	}
	return response.NewDraftResponse(snapshot), nil
}

// CancelDraftUseCase descarta un borrador en curso.
type CancelDraftUseCase struct {
	drafts *store.DraftStore
}

// NewCancelDraftUseCase crea una nueva instancia del caso de uso.
func NewCancelDraftUseCase(drafts *store.DraftStore) *CancelDraftUseCase {
	return &CancelDraftUseCase{drafts: drafts}
}

// Execute elimina el borrador del store.
func (uc *CancelDraftUseCase) Execute(draftID string) {
	uc.drafts.Delete(draftID)
}

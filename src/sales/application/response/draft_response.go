package response

import (
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
)

// DraftResponse es la vista del borrador que devuelve el gateway.
type DraftResponse struct {
	DraftID         string                 `json:"draft_id"`
	CustomerID      string                 `json:"customer_id"`
	PaymentMethodID string                 `json:"payment_method_id"`
	Items           []entity.DraftLineItem `json:"items"`
	Selection       entity.DraftSelection  `json:"selection"`
	TotalItems      int                    `json:"total_items"`
}

// NewDraftResponse arma la respuesta a partir de una copia del borrador.
func NewDraftResponse(d entity.OrderDraft) DraftResponse {
	return DraftResponse{
		DraftID:         d.ID,
		CustomerID:      d.CustomerID,
		PaymentMethodID: d.PaymentMethodID,
		Items:           d.Items,
		Selection:       d.Selection,
		TotalItems:      len(d.Items),
	}
}

// SubmitResponse confirma el envío exitoso de una venta.
type SubmitResponse struct {
	DraftID           string `json:"draft_id"`
	ItemsSubmitted    int    `json:"items_submitted"`
	PaymentMethodName string `json:"payment_method_name"`
}

package usecase

import (
	"fmt"
	"sort"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/infrastructure/client"
	"github.com/asaskevich/EventBus"
)

// EventMethodsChanged se publica en el bus tras un alta o baja de métodos
// de pago, para que el cache se refresque.
const EventMethodsChanged = "methods:changed"

// ListMethodsUseCase lista los métodos de pago ordenados por id.
type ListMethodsUseCase struct {
	salesClient *client.SalesClient
}

func NewListMethodsUseCase(salesClient *client.SalesClient) *ListMethodsUseCase {
	return &ListMethodsUseCase{salesClient: salesClient}
}

func (uc *ListMethodsUseCase) Execute() ([]entity.PaymentMethod, error) {
	methods, err := uc.salesClient.GetMethods()
	if err != nil {
		return nil, fmt.Errorf("error fetching methods: %w", err)
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].MethodID < methods[j].MethodID
	})
	return methods, nil
}

// CreateMethodUseCase crea un método de pago y notifica el cambio.
type CreateMethodUseCase struct {
	salesClient *client.SalesClient
	bus         EventBus.Bus
}

func NewCreateMethodUseCase(salesClient *client.SalesClient, bus EventBus.Bus) *CreateMethodUseCase {
	return &CreateMethodUseCase{salesClient: salesClient, bus: bus}
}

func (uc *CreateMethodUseCase) Execute(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if err := uc.salesClient.CreateMethod(name); err != nil {
		return fmt.Errorf("error creating method: %w", err)
	}
	if uc.bus != nil {
		uc.bus.Publish(EventMethodsChanged)
	}
	return nil
}

// DeleteMethodUseCase elimina un método de pago y notifica el cambio.
type DeleteMethodUseCase struct {
	salesClient *client.SalesClient
	bus         EventBus.Bus
}

func NewDeleteMethodUseCase(salesClient *client.SalesClient, bus EventBus.Bus) *DeleteMethodUseCase {
	return &DeleteMethodUseCase{salesClient: salesClient, bus: bus}
}

func (uc *DeleteMethodUseCase) Execute(methodID string) error {
	if err := uc.salesClient.DeleteMethod(methodID); err != nil {
		return fmt.Errorf("error deleting method: %w", err)
	}
	if uc.bus != nil {
		uc.bus.Publish(EventMethodsChanged)
	}
	return nil
}

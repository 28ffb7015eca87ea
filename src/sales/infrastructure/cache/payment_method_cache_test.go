package cache

import (
	"errors"
	"testing"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	methods []entity.PaymentMethod
	err     error
	calls   int
}

func (f *fakeLister) GetMethods() ([]entity.PaymentMethod, error) {
	f.calls++
	return f.methods, f.err
}

func TestPaymentMethodCache_Refresh(t *testing.T) {
	lister := &fakeLister{methods: []entity.PaymentMethod{
		{MethodID: "m1", Name: "Pix"},
		{MethodID: "m2", Name: "Credito"},
	}}

	c := NewPaymentMethodCache()
	require.NoError(t, c.Refresh(lister))

	m, ok := c.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "Pix", m.Name)
	assert.Equal(t, "Credito", c.GetName("m2"))
}

func TestPaymentMethodCache_GetNameUnknown(t *testing.T) {
	c := NewPaymentMethodCache()
	assert.Equal(t, "Unknown", c.GetName("nope"))
}

func TestPaymentMethodCache_RefreshFailureKeepsOldSnapshot(t *testing.T) {
	lister := &fakeLister{methods: []entity.PaymentMethod{{MethodID: "m1", Name: "Pix"}}}

	c := NewPaymentMethodCache()
	require.NoError(t, c.Refresh(lister))

	lister.err = errors.New("backend down")
	require.Error(t, c.Refresh(lister))

	// El snapshot anterior sigue sirviendo lecturas.
	assert.Equal(t, "Pix", c.GetName("m1"))
}

func TestPaymentMethodCache_SubscribeRefreshesOnEvent(t *testing.T) {
	lister := &fakeLister{}

	c := NewPaymentMethodCache()
	bus := EventBus.New()
	require.NoError(t, c.SubscribeTo(bus, lister))

	lister.methods = []entity.PaymentMethod{{MethodID: "m9", Name: "Debito"}}
	bus.Publish("methods:changed")
	bus.WaitAsync()

	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, "Debito", c.GetName("m9"))
}

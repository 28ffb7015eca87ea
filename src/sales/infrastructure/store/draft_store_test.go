package store

import (
	"testing"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_Lifecycle(t *testing.T) {
	s := NewDraftStore()
	assert.Equal(t, 0, s.Count())

	draft := s.Create()
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, 1, s.Count())

	err := s.With(draft.ID, func(d *entity.OrderDraft) error {
		d.SetCustomer("c1")
		return nil
	})
	require.NoError(t, err)

	snap, err := s.Snapshot(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "c1", snap.CustomerID)

	s.Delete(draft.ID)
	assert.Equal(t, 0, s.Count())

	_, err = s.Snapshot(draft.ID)
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)
}

func TestDraftStore_WithUnknownDraft(t *testing.T) {
	s := NewDraftStore()
	err := s.With("nope", func(d *entity.OrderDraft) error { return nil })
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)
}

func TestDraftStore_SnapshotIsACopy(t *testing.T) {
	s := NewDraftStore()
	draft := s.Create()

	require.NoError(t, s.With(draft.ID, func(d *entity.OrderDraft) error {
		d.Items = append(d.Items, entity.DraftLineItem{ProductID: "p1", Quantity: 1})
		return nil
	}))

	snap, err := s.Snapshot(draft.ID)
	require.NoError(t, err)

	// Mutar la copia no toca el borrador guardado.
	snap.Items[0].Quantity = 99
	again, err := s.Snapshot(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestDraftStore_DeleteUnknownIsNoOp(t *testing.T) {
	s := NewDraftStore()
	s.Delete("nope")
	assert.Equal(t, 0, s.Count())
}

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seefirst/seefirst-api/internal/domain/entity"
)

func TestValidOrderTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusConfirmed, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusDelivered, false},
		{entity.OrderStatusConfirmed, entity.OrderStatusDelivered, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusCancelled, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusPending, false},
		{entity.OrderStatusDelivered, entity.OrderStatusCancelled, false},
		{entity.OrderStatusCancelled, entity.OrderStatusConfirmed, false},
		{entity.OrderStatusPending, entity.OrderStatusPending, false},
		{"desconocido", entity.OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.ValidOrderTransition(tc.from, tc.to),
			"transición %s → %s", tc.from, tc.to)
	}
}

func TestValidPreviewTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.PreviewStatusPending, entity.PreviewStatusConfirmed, true},
		{entity.PreviewStatusPending, entity.PreviewStatusCancelled, true},
		{entity.PreviewStatusPending, entity.PreviewStatusCompleted, false},
		{entity.PreviewStatusConfirmed, entity.PreviewStatusCompleted, true},
		{entity.PreviewStatusConfirmed, entity.PreviewStatusCancelled, true},
		{entity.PreviewStatusCompleted, entity.PreviewStatusPending, false},
		{entity.PreviewStatusCancelled, entity.PreviewStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.ValidPreviewTransition(tc.from, tc.to),
			"transición %s → %s", tc.from, tc.to)
	}
}

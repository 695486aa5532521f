package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

func TestEquipmentService_CreateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Available defaults to total quantity", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(equipmentRepo)

		equipmentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		eq := &domain.Equipment{Name: "Drill", PricePerDay: 300, Quantity: 3}
		require.NoError(t, svc.CreateEquipment(ctx, eq))
		assert.Equal(t, 3, eq.AvailableQuantity)
	})

	t.Run("Available cannot exceed quantity", func(t *testing.T) {
		svc := service.NewEquipmentService(new(MockEquipmentRepo))

		eq := &domain.Equipment{Name: "Drill", PricePerDay: 300, Quantity: 2, AvailableQuantity: 5}
		err := svc.CreateEquipment(ctx, eq)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("Price and quantity are validated", func(t *testing.T) {
		svc := service.NewEquipmentService(new(MockEquipmentRepo))

		err := svc.CreateEquipment(ctx, &domain.Equipment{Name: "Drill"})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})
}

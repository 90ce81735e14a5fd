package shipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainShipment "freight-marketplace/internal/domain/shipment"
	"freight-marketplace/internal/infrastructure/storage"
	appErrors "freight-marketplace/pkg/errors"
)

type fakeShipmentRepo struct {
	shipments []*domainShipment.Shipment
	nextID    uint
}

func (f *fakeShipmentRepo) Create(_ context.Context, s *domainShipment.Shipment) error {
	f.nextID++
	s.ID = f.nextID
	f.shipments = append(f.shipments, s)
	return nil
}

func (f *fakeShipmentRepo) GetByID(_ context.Context, id uint) (*domainShipment.Shipment, error) {
	for _, s := range f.shipments {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *fakeShipmentRepo) ListByShipper(_ context.Context, shipperID uint) ([]*domainShipment.Shipment, error) {
	var out []*domainShipment.Shipment
	for _, s := range f.shipments {
		if s.ShipperID == shipperID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestService() (*Service, *fakeShipmentRepo) {
	shipments := &fakeShipmentRepo{}
	svc := NewService(shipments, storage.NewPlaceholder("https://files.example"))
	return svc, shipments
}

func validRequest() *CreateRequest {
	return &CreateRequest{
		PickupLocation:        "Pune",
		DropLocation:          "Nagpur",
		MaterialType:          "electronics",
		WeightKg:              1200,
		LengthFt:              10,
		WidthFt:               6,
		HeightFt:              6,
		EstimatedDeliveryDate: "2026-09-15",
		ValueINR:              250000,
		ShipmentType:          "full_truck_load",
	}
}

func TestCreateShipment(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), 5, validRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, uint(5), resp.ShipperID)
	assert.Equal(t, "full_truck_load", resp.ShipmentType)
	assert.Equal(t, 15, resp.EstimatedDeliveryDate.Day())
	require.Len(t, repo.shipments, 1)
}

func TestCreateShipmentMissingFields(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.PickupLocation = ""
	req.WeightKg = 0

	_, err := svc.Create(context.Background(), 5, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "pickupLocation is required")
	assert.Contains(t, validationErr.Violations, "weight must be a positive number")
}

func TestCreateShipmentInvalidType(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.ShipmentType = "half_truck"

	_, err := svc.Create(context.Background(), 5, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "shipmentType must be one of full_truck_load, part_truck_load")
}

func TestCreateShipmentBadDate(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.EstimatedDeliveryDate = "next tuesday"

	_, err := svc.Create(context.Background(), 5, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "estimatedDeliveryDate must be a date in YYYY-MM-DD format")
}

func TestListByShipper(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 5, validRequest())
	require.NoError(t, err)

	list, err := svc.ListByShipper(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := svc.ListByShipper(context.Background(), 6)
	require.NoError(t, err)
	assert.Empty(t, other)
}

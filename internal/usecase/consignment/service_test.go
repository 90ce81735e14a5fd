package consignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainShipment "freight-marketplace/internal/domain/shipment"
	appErrors "freight-marketplace/pkg/errors"
)

type fakeConsignmentRepo struct {
	consignments []*domainShipment.Consignment
	nextID       uint
}

func (f *fakeConsignmentRepo) Create(_ context.Context, c *domainShipment.Consignment) error {
	for _, existing := range f.consignments {
		if existing.ShipmentID == c.ShipmentID {
			return domainShipment.ErrDuplicateConsignment
		}
	}
	f.nextID++
	c.ID = f.nextID
	f.consignments = append(f.consignments, c)
	return nil
}

func (f *fakeConsignmentRepo) GetByShipmentID(_ context.Context, shipmentID uint) (*domainShipment.Consignment, error) {
	for _, c := range f.consignments {
		if c.ShipmentID == shipmentID {
			return c, nil
		}
	}
	return nil, domainShipment.ErrConsignmentNotFound
}

func (f *fakeConsignmentRepo) GetAll(_ context.Context) ([]*domainShipment.Consignment, error) {
	return f.consignments, nil
}

func (f *fakeConsignmentRepo) ListByStatus(_ context.Context, status domainShipment.ConsignmentStatus) ([]*domainShipment.Consignment, error) {
	var out []*domainShipment.Consignment
	for _, c := range f.consignments {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubShipmentRepo struct {
	shipment *domainShipment.Shipment
}

func (s *stubShipmentRepo) Create(context.Context, *domainShipment.Shipment) error { return nil }

func (s *stubShipmentRepo) GetByID(_ context.Context, id uint) (*domainShipment.Shipment, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return nil, domainShipment.ErrShipmentNotFound
	}
	return s.shipment, nil
}

func (s *stubShipmentRepo) ListByShipper(context.Context, uint) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeConsignmentRepo) {
	consignments := &fakeConsignmentRepo{}
	shipments := &stubShipmentRepo{
		shipment: &domainShipment.Shipment{
			ID:             10,
			ShipperID:      5,
			PickupLocation: "Pune",
			DropLocation:   "Nagpur",
		},
	}
	svc := NewService(consignments, shipments)
	return svc, consignments
}

func TestCreateConsignment(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 10})
	require.NoError(t, err)

	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, uint(3), resp.TransporterID)
	assert.Equal(t, "Pune", resp.Source, "source defaults to the shipment pickup")
	assert.Equal(t, "Nagpur", resp.Destination)
	require.Len(t, repo.consignments, 1)
}

func TestCreateConsignmentUnknownShipment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 99})
	assert.ErrorIs(t, err, domainShipment.ErrShipmentNotFound)
}

func TestCreateConsignmentDuplicate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 10})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 4, &CreateRequest{ShipmentID: 10})
	assert.ErrorIs(t, err, domainShipment.ErrDuplicateConsignment)
}

func TestCreateConsignmentMissingShipmentID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{})
	var validationErr *appErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateConsignmentBadDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 10, PickupDate: "tomorrow"})
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "pickupDate must be a date in YYYY-MM-DD format")
}

func TestByStatus(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 10})
	require.NoError(t, err)
	repo.consignments[0].Status = domainShipment.StatusLive

	list, err := svc.ByStatus(context.Background(), "Live")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	empty, err := svc.ByStatus(context.Background(), "Pending")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestByStatusInvalid(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ByStatus(context.Background(), "Shipped")
	assert.ErrorIs(t, err, domainShipment.ErrInvalidStatus)
}

func TestAll(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 3, &CreateRequest{ShipmentID: 10})
	require.NoError(t, err)

	list, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

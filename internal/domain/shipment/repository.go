package shipment

import "context"

type ShipmentRepository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id uint) (*Shipment, error)
	ListByShipper(ctx context.Context, shipperID uint) ([]*Shipment, error)
}

type ConsignmentRepository interface {
	Create(ctx context.Context, c *Consignment) error
	GetByShipmentID(ctx context.Context, shipmentID uint) (*Consignment, error)
	GetAll(ctx context.Context) ([]*Consignment, error)
	ListByStatus(ctx context.Context, status ConsignmentStatus) ([]*Consignment, error)
}

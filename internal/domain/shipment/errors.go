package shipment

import "errors"

var (
	ErrShipmentNotFound     = errors.New("shipment not found")
	ErrConsignmentNotFound  = errors.New("consignment not found")
	ErrDuplicateConsignment = errors.New("a consignment already exists for this shipment")
	ErrInvalidStatus        = errors.New("invalid consignment status")
)

package fleet

import "context"

type VehicleRepository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByNumber(ctx context.Context, vehicleNumber string) (*Vehicle, error)
	ListByTransporter(ctx context.Context, transporterID uint) ([]*Vehicle, error)
}

type DriverRepository interface {
	Create(ctx context.Context, d *Driver) error
	GetByPhone(ctx context.Context, phoneNumber string) (*Driver, error)
	ListByTransporter(ctx context.Context, transporterID uint) ([]*Driver, error)
}

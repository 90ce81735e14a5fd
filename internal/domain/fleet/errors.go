package fleet

import "errors"

var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrDuplicateVehicleNumber = errors.New("vehicle with this number already exists")
	ErrDriverNotFound         = errors.New("driver not found")
	ErrDuplicateDriverPhone   = errors.New("driver with this phone number already exists")
)

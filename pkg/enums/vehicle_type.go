package enums

import "fmt"

// VehicleType is the closed option set behind the listing-form type selector.
type VehicleType string

const (
	VehicleTypeBus     VehicleType = "bus"
	VehicleTypeTruck   VehicleType = "truck"
	VehicleTypeVan     VehicleType = "van"
	VehicleTypeTractor VehicleType = "tractor"
)

var validVehicleTypes = []VehicleType{
	VehicleTypeBus,
	VehicleTypeTruck,
	VehicleTypeVan,
	VehicleTypeTractor,
}

// VehicleTypeOption is one selectable entry, with pt-BR display label and the
// icon slug the frontend maps to an asset.
type VehicleTypeOption struct {
	Value VehicleType `json:"value"`
	Label string      `json:"label"`
	Icon  string      `json:"icon"`
}

// defaultVehicleIcon is returned for unrecognized values instead of failing.
const defaultVehicleIcon = "vehicle-generic"

var vehicleTypeOptions = []VehicleTypeOption{
	{Value: VehicleTypeBus, Label: "Ônibus", Icon: "bus"},
	{Value: VehicleTypeTruck, Label: "Caminhão", Icon: "truck"},
	{Value: VehicleTypeVan, Label: "Van", Icon: "van"},
	{Value: VehicleTypeTractor, Label: "Trator", Icon: "tractor"},
}

// VehicleTypeOptions returns the full selector catalog in display order.
func VehicleTypeOptions() []VehicleTypeOption {
	options := make([]VehicleTypeOption, len(vehicleTypeOptions))
	copy(options, vehicleTypeOptions)
	return options
}

// Icon resolves the icon slug for the type, falling back to the generic icon
// for unknown values.
func (v VehicleType) Icon() string {
	for _, option := range vehicleTypeOptions {
		if option.Value == v {
			return option.Icon
		}
	}
	return defaultVehicleIcon
}

// IsValid reports whether the value matches the canonical vehicle type enum.
func (v VehicleType) IsValid() bool {
	for _, candidate := range validVehicleTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVehicleType converts the raw string to VehicleType.
func ParseVehicleType(value string) (VehicleType, error) {
	for _, candidate := range validVehicleTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle type %q", value)
}

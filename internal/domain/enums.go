package domain

type ShotType string

const (
	ShotWide     ShotType = "Wide"
	ShotMedium   ShotType = "Medium"
	ShotCloseUp  ShotType = "Close-up"
	ShotDetail   ShotType = "Detail"
	ShotOverhead ShotType = "Overhead"
	ShotOther    ShotType = "Other"
)

type ShotAngle string

const (
	AngleEyeLevel ShotAngle = "Eye-level"
	AngleHigh     ShotAngle = "High Angle"
	AngleLow      ShotAngle = "Low Angle"
	AngleDutch    ShotAngle = "Dutch Angle"
	AngleOther    ShotAngle = "Other"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "Portrait"
	OrientationLandscape Orientation = "Landscape"
	OrientationSquare    Orientation = "Square"
	OrientationAny       Orientation = "Any"
)

type ShootStatus string

const (
	ShootConfirmed ShootStatus = "Confirmed"
	ShootPencil    ShootStatus = "Pencil"
	ShootProposed  ShootStatus = "Proposed"
	ShootTBD       ShootStatus = "TBD"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

type EquipmentCategory string

const (
	EquipCamera   EquipmentCategory = "Camera"
	EquipLens     EquipmentCategory = "Lens"
	EquipLighting EquipmentCategory = "Lighting"
	EquipAudio    EquipmentCategory = "Audio"
	EquipGrip     EquipmentCategory = "Grip"
	EquipProps    EquipmentCategory = "Props"
	EquipOther    EquipmentCategory = "Other"
)

// ValidShotTypes is the canonical set of accepted shot type strings.
var ValidShotTypes = map[string]bool{
	"Wide": true, "Medium": true, "Close-up": true,
	"Detail": true, "Overhead": true, "Other": true,
}

// ValidShotAngles is the canonical set of accepted shot angle strings.
var ValidShotAngles = map[string]bool{
	"Eye-level": true, "High Angle": true, "Low Angle": true,
	"Dutch Angle": true, "Other": true,
}

// ValidOrientations is the canonical set of accepted orientation strings.
var ValidOrientations = map[string]bool{
	"Portrait": true, "Landscape": true, "Square": true, "Any": true,
}

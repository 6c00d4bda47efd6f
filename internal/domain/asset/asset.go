package asset

import (
	"fmt"
	"time"
)

// Asset is a tracked piece of equipment: computers, printers, network gear.
// Images are stored inline as base64 strings.
type Asset struct {
	id           string
	assetCode    string
	serialNumber string
	assetType    string
	brand        string
	model        string
	startDate    time.Time
	location     string
	department   *string
	ipAddress    *string
	diagramFile  *string
	images       []string
	companyID    string
	branchID     string
	responsible  string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAsset(
	assetCode string,
	serialNumber string,
	assetType string,
	brand string,
	model string,
	startDate time.Time,
	location string,
	companyID string,
	branchID string,
	responsible string,
) (*Asset, error) {
	if len(assetCode) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if len(assetType) == 0 {
		return nil, fmt.Errorf("type is required")
	}
	if len(companyID) == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(branchID) == 0 {
		return nil, fmt.Errorf("branch ID is required")
	}

	now := time.Now()
	return &Asset{
		assetCode:    assetCode,
		serialNumber: serialNumber,
		assetType:    assetType,
		brand:        brand,
		model:        model,
		startDate:    startDate,
		location:     location,
		companyID:    companyID,
		branchID:     branchID,
		responsible:  responsible,
		images:       []string{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAsset(
	id string,
	assetCode string,
	serialNumber string,
	assetType string,
	brand string,
	model string,
	startDate time.Time,
	location string,
	department *string,
	ipAddress *string,
	diagramFile *string,
	images []string,
	companyID string,
	branchID string,
	responsible string,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}

	if images == nil {
		images = []string{}
	}

	return &Asset{
		id:           id,
		assetCode:    assetCode,
		serialNumber: serialNumber,
		assetType:    assetType,
		brand:        brand,
		model:        model,
		startDate:    startDate,
		location:     location,
		department:   department,
		ipAddress:    ipAddress,
		diagramFile:  diagramFile,
		images:       images,
		companyID:    companyID,
		branchID:     branchID,
		responsible:  responsible,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() string           { return a.id }
func (a *Asset) AssetCode() string    { return a.assetCode }
func (a *Asset) SerialNumber() string { return a.serialNumber }
func (a *Asset) Type() string         { return a.assetType }
func (a *Asset) Brand() string        { return a.brand }
func (a *Asset) Model() string        { return a.model }
func (a *Asset) StartDate() time.Time { return a.startDate }
func (a *Asset) Location() string     { return a.location }
func (a *Asset) Department() *string  { return a.department }
func (a *Asset) IPAddress() *string   { return a.ipAddress }
func (a *Asset) DiagramFile() *string { return a.diagramFile }
func (a *Asset) CompanyID() string    { return a.companyID }
func (a *Asset) BranchID() string     { return a.branchID }
func (a *Asset) Responsible() string  { return a.responsible }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time { return a.updatedAt }

func (a *Asset) Images() []string {
	out := make([]string, len(a.images))
	copy(out, a.images)
	return out
}

func (a *Asset) SetID(id string) error {
	if len(a.id) > 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("asset ID cannot be empty")
	}
	a.id = id
	return nil
}

func (a *Asset) Update(
	assetCode string,
	serialNumber string,
	assetType string,
	brand string,
	model string,
	startDate time.Time,
	location string,
	department *string,
	ipAddress *string,
	responsible string,
) error {
	if len(assetCode) == 0 {
		return fmt.Errorf("asset code is required")
	}
	if len(serialNumber) == 0 {
		return fmt.Errorf("serial number is required")
	}

	a.assetCode = assetCode
	a.serialNumber = serialNumber
	a.assetType = assetType
	a.brand = brand
	a.model = model
	a.startDate = startDate
	a.location = location
	a.department = department
	a.ipAddress = ipAddress
	a.responsible = responsible
	a.updatedAt = time.Now()

	return nil
}

func (a *Asset) SetDiagramFile(diagramFile *string) {
	a.diagramFile = diagramFile
	a.updatedAt = time.Now()
}

func (a *Asset) AddImage(image string) error {
	if len(image) == 0 {
		return fmt.Errorf("image cannot be empty")
	}
	a.images = append(a.images, image)
	a.updatedAt = time.Now()
	return nil
}

func (a *Asset) RemoveImage(index int) error {
	if index < 0 || index >= len(a.images) {
		return fmt.Errorf("image index %d out of range", index)
	}
	a.images = append(a.images[:index], a.images[index+1:]...)
	a.updatedAt = time.Now()
	return nil
}

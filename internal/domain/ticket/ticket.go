package ticket

import (
	"fmt"
	"time"
)

// Ticket is the repair request aggregate. The identifier is assigned by the
// repository layer from the branch's ticket namespace, so a fresh ticket has
// an empty id until saved.
type Ticket struct {
	id          string
	title       string
	description string
	assetID     *string
	priority    string
	status      Status
	createdBy   uint
	assignedTo  *uint
	approvedBy  *uint
	closedBy    *uint
	companyID   string
	branchID    string
	attachments []string
	resolution  *string

	phoneNumber    *string
	deviceLocation *string
	ipAddress      *string

	repairCost               *float64
	replacedPartName         *string
	replacedPartSerialNumber *string
	replacedPartBrand        *string
	replacedPartModel        *string

	customDeviceType         *string
	customDeviceSerialNumber *string
	customDeviceAssetCode    *string
	customDeviceBrand        *string
	customDeviceModel        *string

	images    []string
	closedAt  *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(
	title string,
	description string,
	priority string,
	createdBy uint,
	companyID string,
	branchID string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(priority) == 0 {
		priority = "medium"
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(companyID) == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(branchID) == 0 {
		return nil, fmt.Errorf("branch ID is required")
	}

	now := time.Now()

	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      StatusOpen,
		createdBy:   createdBy,
		companyID:   companyID,
		branchID:    branchID,
		attachments: []string{},
		images:      []string{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Record carries every persisted ticket attribute for reconstruction.
type Record struct {
	ID          string
	Title       string
	Description string
	AssetID     *string
	Priority    string
	Status      Status
	CreatedBy   uint
	AssignedTo  *uint
	ApprovedBy  *uint
	ClosedBy    *uint
	CompanyID   string
	BranchID    string
	Attachments []string
	Resolution  *string

	PhoneNumber    *string
	DeviceLocation *string
	IPAddress      *string

	RepairCost               *float64
	ReplacedPartName         *string
	ReplacedPartSerialNumber *string
	ReplacedPartBrand        *string
	ReplacedPartModel        *string

	CustomDeviceType         *string
	CustomDeviceSerialNumber *string
	CustomDeviceAssetCode    *string
	CustomDeviceBrand        *string
	CustomDeviceModel        *string

	Images    []string
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructTicket(r Record) (*Ticket, error) {
	if len(r.ID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !r.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", r.Status)
	}

	if r.Attachments == nil {
		r.Attachments = []string{}
	}
	if r.Images == nil {
		r.Images = []string{}
	}

	return &Ticket{
		id:          r.ID,
		title:       r.Title,
		description: r.Description,
		assetID:     r.AssetID,
		priority:    r.Priority,
		status:      r.Status,
		createdBy:   r.CreatedBy,
		assignedTo:  r.AssignedTo,
		approvedBy:  r.ApprovedBy,
		closedBy:    r.ClosedBy,
		companyID:   r.CompanyID,
		branchID:    r.BranchID,
		attachments: r.Attachments,
		resolution:  r.Resolution,

		phoneNumber:    r.PhoneNumber,
		deviceLocation: r.DeviceLocation,
		ipAddress:      r.IPAddress,

		repairCost:               r.RepairCost,
		replacedPartName:         r.ReplacedPartName,
		replacedPartSerialNumber: r.ReplacedPartSerialNumber,
		replacedPartBrand:        r.ReplacedPartBrand,
		replacedPartModel:        r.ReplacedPartModel,

		customDeviceType:         r.CustomDeviceType,
		customDeviceSerialNumber: r.CustomDeviceSerialNumber,
		customDeviceAssetCode:    r.CustomDeviceAssetCode,
		customDeviceBrand:        r.CustomDeviceBrand,
		customDeviceModel:        r.CustomDeviceModel,

		images:    r.Images,
		closedAt:  r.ClosedAt,
		createdAt: r.CreatedAt,
		updatedAt: r.UpdatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) AssetID() *string {
	return t.assetID
}

func (t *Ticket) Priority() string {
	return t.priority
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) ApprovedBy() *uint {
	return t.approvedBy
}

func (t *Ticket) ClosedBy() *uint {
	return t.closedBy
}

func (t *Ticket) CompanyID() string {
	return t.companyID
}

func (t *Ticket) BranchID() string {
	return t.branchID
}

func (t *Ticket) Attachments() []string {
	out := make([]string, len(t.attachments))
	copy(out, t.attachments)
	return out
}

func (t *Ticket) Resolution() *string {
	return t.resolution
}

func (t *Ticket) PhoneNumber() *string {
	return t.phoneNumber
}

func (t *Ticket) DeviceLocation() *string {
	return t.deviceLocation
}

func (t *Ticket) IPAddress() *string {
	return t.ipAddress
}

func (t *Ticket) RepairCost() *float64 {
	return t.repairCost
}

func (t *Ticket) ReplacedPartName() *string {
	return t.replacedPartName
}

func (t *Ticket) ReplacedPartSerialNumber() *string {
	return t.replacedPartSerialNumber
}

func (t *Ticket) ReplacedPartBrand() *string {
	return t.replacedPartBrand
}

func (t *Ticket) ReplacedPartModel() *string {
	return t.replacedPartModel
}

func (t *Ticket) CustomDeviceType() *string {
	return t.customDeviceType
}

func (t *Ticket) CustomDeviceSerialNumber() *string {
	return t.customDeviceSerialNumber
}

func (t *Ticket) CustomDeviceAssetCode() *string {
	return t.customDeviceAssetCode
}

func (t *Ticket) CustomDeviceBrand() *string {
	return t.customDeviceBrand
}

func (t *Ticket) CustomDeviceModel() *string {
	return t.customDeviceModel
}

func (t *Ticket) Images() []string {
	out := make([]string, len(t.images))
	copy(out, t.images)
	return out
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID assigns the generated identifier exactly once.
func (t *Ticket) SetID(id string) error {
	if len(t.id) > 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("ticket ID cannot be empty")
	}
	t.id = id
	return nil
}

// ChangeStatus applies a status change and its derived bookkeeping: the
// acting user is always recorded as the approver, and closing stamps
// closed_at and closed_by together. Returns false when the status is
// unchanged; callers use the flag to decide whether to record history.
func (t *Ticket) ChangeStatus(newStatus Status, actorID uint) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return false, nil
	}

	t.status = newStatus
	t.approvedBy = &actorID
	t.updatedAt = time.Now()

	if newStatus.IsClosed() {
		now := time.Now()
		t.closedAt = &now
		t.closedBy = &actorID
	}

	return true, nil
}

// AssignTo changes the assignee. Returns true when this is an effective
// reassignment to a different user.
func (t *Ticket) AssignTo(assigneeID uint) (bool, error) {
	if assigneeID == 0 {
		return false, fmt.Errorf("assignee ID cannot be zero")
	}

	if t.assignedTo != nil && *t.assignedTo == assigneeID {
		return false, nil
	}

	t.assignedTo = &assigneeID
	t.updatedAt = time.Now()

	return true, nil
}

func (t *Ticket) UpdateDetails(title, description, priority string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}

	t.title = title
	t.description = description
	if len(priority) > 0 {
		t.priority = priority
	}
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) SetAssetID(assetID *string) {
	t.assetID = assetID
	t.updatedAt = time.Now()
}

func (t *Ticket) SetResolution(resolution *string) {
	t.resolution = resolution
	t.updatedAt = time.Now()
}

func (t *Ticket) SetContactInfo(phoneNumber, deviceLocation, ipAddress *string) {
	t.phoneNumber = phoneNumber
	t.deviceLocation = deviceLocation
	t.ipAddress = ipAddress
	t.updatedAt = time.Now()
}

func (t *Ticket) SetRepairDetails(cost *float64, partName, partSerial, partBrand, partModel *string) {
	t.repairCost = cost
	t.replacedPartName = partName
	t.replacedPartSerialNumber = partSerial
	t.replacedPartBrand = partBrand
	t.replacedPartModel = partModel
	t.updatedAt = time.Now()
}

// SetCustomDevice records the device details for tickets raised against
// equipment that is not registered as an asset.
func (t *Ticket) SetCustomDevice(deviceType, serialNumber, assetCode, brand, model *string) {
	t.customDeviceType = deviceType
	t.customDeviceSerialNumber = serialNumber
	t.customDeviceAssetCode = assetCode
	t.customDeviceBrand = brand
	t.customDeviceModel = model
	t.updatedAt = time.Now()
}

func (t *Ticket) SetImages(images []string) {
	if images == nil {
		images = []string{}
	}
	t.images = images
	t.updatedAt = time.Now()
}

func (t *Ticket) SetAttachments(attachments []string) {
	if attachments == nil {
		attachments = []string{}
	}
	t.attachments = attachments
	t.updatedAt = time.Now()
}

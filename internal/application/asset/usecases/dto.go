package usecases

import (
	"time"

	"datadesk/internal/domain/asset"
)

// AssetDTO is the wire representation of an asset.
type AssetDTO struct {
	ID           string    `json:"id"`
	AssetCode    string    `json:"asset_code"`
	SerialNumber string    `json:"serial_number"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	StartDate    time.Time `json:"start_date"`
	Location     string    `json:"location"`
	Department   *string   `json:"department,omitempty"`
	IPAddress    *string   `json:"ip_address,omitempty"`
	DiagramFile  *string   `json:"diagram_file,omitempty"`
	Images       []string  `json:"images,omitempty"`
	CompanyID    string    `json:"company_id"`
	BranchID     string    `json:"branch_id"`
	Responsible  string    `json:"responsible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toAssetDTO(a *asset.Asset) AssetDTO {
	return AssetDTO{
		ID:           a.ID(),
		AssetCode:    a.AssetCode(),
		SerialNumber: a.SerialNumber(),
		Type:         a.Type(),
		Brand:        a.Brand(),
		Model:        a.Model(),
		StartDate:    a.StartDate(),
		Location:     a.Location(),
		Department:   a.Department(),
		IPAddress:    a.IPAddress(),
		DiagramFile:  a.DiagramFile(),
		Images:       a.Images(),
		CompanyID:    a.CompanyID(),
		BranchID:     a.BranchID(),
		Responsible:  a.Responsible(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

package authorization

import "gorm.io/gorm"

// Scope carries the identity attributes that limit what rows a request may see.
type Scope struct {
	Role      UserRole
	UserID    uint
	CompanyID string
	BranchID  string
}

// CompanyScope returns a GORM scope restricting rows to the caller's company.
// Super admins see everything; everyone else is limited to their own company.
func (s Scope) CompanyScope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Role.IsSuperAdmin() {
			return db
		}
		return db.Where("company_id = ?", s.CompanyID)
	}
}

// CompanyBranchScope restricts rows to the caller's company, and to their
// branch when one is assigned. Super admins see everything.
func (s Scope) CompanyBranchScope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Role.IsSuperAdmin() {
			return db
		}
		db = db.Where("company_id = ?", s.CompanyID)
		if s.BranchID != "" {
			db = db.Where("branch_id = ?", s.BranchID)
		}
		return db
	}
}

// TicketScope restricts ticket rows by company/branch and, for plain users,
// to tickets they created themselves.
func (s Scope) TicketScope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = s.CompanyBranchScope()(db)
		if s.Role == RoleUser {
			db = db.Where("created_by = ?", s.UserID)
		}
		return db
	}
}

package models

// IssueModel is the persistence model for the issues table.
type IssueModel struct {
	ID         uint   `gorm:"primaryKey;column:id"`
	Brand      string `gorm:"column:brand;not null"`
	Appliance  string `gorm:"column:appliance;not null"`
	IssueTitle string `gorm:"column:issue_title;not null"`
	Solution   string `gorm:"column:solution;not null"`
	BrandPage  string `gorm:"column:brand_page;not null;default:''"`
}

// TableName specifies the table name for IssueModel
func (IssueModel) TableName() string {
	return "issues"
}

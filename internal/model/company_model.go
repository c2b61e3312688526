package model

type Company struct {
	UID       string   `gorm:"column:company_uid;primaryKey;size:255" json:"companyUID"`
	Name      string   `gorm:"column:name" json:"name"`
	City      string   `gorm:"column:city" json:"city"`
	Province  string   `gorm:"column:province" json:"province"`
	Address   string   `gorm:"column:address" json:"address"`
	Latitude  *float64 `gorm:"column:latitude;type:numeric(10,7)" json:"latitude"`
	Longitude *float64 `gorm:"column:longitude;type:numeric(10,7)" json:"longitude"`
}

func (c *Company) TableName() string {
	return "companies"
}

// HasCoordinates reports whether both latitude and longitude are set.
func (c Company) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

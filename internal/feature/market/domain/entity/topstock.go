package entity

// Region selects one of the static top-100 constituent tables.
type Region string

const (
	RegionUS     Region = "us"
	RegionNifty  Region = "nifty"
	RegionSensex Region = "sensex"
)

// TopStock is one constituent of a top-100 index table.
type TopStock struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CompanyName  string `gorm:"size:255;not null" json:"company_name"`
	TickerSymbol string `gorm:"size:16;not null" json:"ticker_symbol"`
}

// regionTables maps a region to its backing table.
var regionTables = map[Region]string{
	RegionUS:     "us_top_100",
	RegionNifty:  "nifty_top_100",
	RegionSensex: "sensex_top_100",
}

// TableFor returns the backing table for a region and whether the region is known.
func TableFor(r Region) (string, bool) {
	t, ok := regionTables[r]
	return t, ok
}

// TopListTables returns every top-100 table name, for migrations.
func TopListTables() []string {
	return []string{"us_top_100", "nifty_top_100", "sensex_top_100"}
}

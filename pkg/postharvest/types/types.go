package types

// Commodity is an agricultural product entry that handling data attaches to
type Commodity struct {
	ID             string `json:"id"`
	CommodityName  string `json:"commodityName"`
	Variety        string `json:"variety,omitempty"`
	ScientificName string `json:"scientificName,omitempty"`
	CoolingMethod  string `json:"coolingMethod,omitempty"`
	Climacteric    bool   `json:"climacteric"`
}

// CommodityDetails is a commodity together with all of its handling data
type CommodityDetails struct {
	Commodity
	EthyleneSensitivity        []EthyleneSensitivity       `json:"ethyleneSensitivity"`
	RespirationRate            []RespirationRate           `json:"respirationRate"`
	ShelfLife                  []ShelfLife                 `json:"shelfLife"`
	TemperatureRecommendations []TemperatureRecommendation `json:"temperatureRecommendations"`
	References                 []Reference                 `json:"references"`
}

// EthyleneSensitivity describes how a commodity responds to ethylene at a given temperature
type EthyleneSensitivity struct {
	ID             int    `json:"id"`
	CommodityID    string `json:"commodityId"`
	Temperature    string `json:"temperature"`
	C2H4Production string `json:"c2h4Production"`
	C2H4Class      string `json:"c2h4Class"`
}

// RespirationRate is expressed in mg CO2/kg·hr at a temperature in celsius
type RespirationRate struct {
	ID          int    `json:"id"`
	CommodityID string `json:"commodityId"`
	Temperature string `json:"temperature"`
	RRRate      string `json:"rrRate"`
	RRClass     string `json:"rrClass"`
}

type ShelfLife struct {
	ID          int    `json:"id"`
	CommodityID string `json:"commodityId"`
	Temperature string `json:"temperature"`
	ShelfLife   string `json:"shelfLife"`
	Packaging   string `json:"packaging"`
	Description string `json:"description"`
}

// TemperatureRecommendation holds storage temperatures in celsius and relative humidity in percent
type TemperatureRecommendation struct {
	ID          int    `json:"id"`
	CommodityID string `json:"commodityId"`
	MinTemp     string `json:"minTemp"`
	OptimumTemp string `json:"optimumTemp"`
	Description string `json:"description"`
	RH          string `json:"rh"`
}

type Reference struct {
	ID          int    `json:"id"`
	CommodityID string `json:"commodityId"`
	Source      string `json:"source"`
}

// Study is a third party packaging or storage study
type Study struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date,omitempty"`
	Source    string `json:"source,omitempty"`
	Objective string `json:"objective,omitempty"`
}

type StudyCommodity struct {
	StudyID     int    `json:"studyId"`
	CommodityID string `json:"commodityId"`
}

type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
}

// NewUser carries the fields needed to register a user
type NewUser struct {
	User
	Password string `json:"password"`
}

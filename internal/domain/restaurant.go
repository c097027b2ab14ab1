package domain

// Weekdays lists the keys expected in RestaurantInfo.Hours, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Status strings reported in RestaurantInfo.CurrentStatus.
const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// RestaurantInfo is the read model shown in the info panel. It is built on
// every request and never stored.
type RestaurantInfo struct {
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	Phone         string            `json:"phone"`
	Website       string            `json:"website"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	Hours         map[string]string `json:"hours"`
	IsOpen        bool              `json:"isOpen"`
	CurrentStatus string            `json:"currentStatus"`
}

// FallbackRestaurantInfo returns the static record served when the places
// provider cannot supply live data. Each call returns a fresh copy.
func FallbackRestaurantInfo() RestaurantInfo {
	return RestaurantInfo{
		Name:    "Bodegoes",
		Address: "123 Mediterranean St, Downtown",
		Phone:   "(123) 456-7890",
		Website: "bodegoes.com",
		Rating:  4.5,
		Reviews: 324,
		Hours: map[string]string{
			"Monday":    "11:00 AM - 10:00 PM",
			"Tuesday":   "11:00 AM - 10:00 PM",
			"Wednesday": "11:00 AM - 10:00 PM",
			"Thursday":  "11:00 AM - 11:00 PM",
			"Friday":    "11:00 AM - 11:00 PM",
			"Saturday":  "12:00 PM - 11:00 PM",
			"Sunday":    "12:00 PM - 9:00 PM",
		},
		IsOpen:        true,
		CurrentStatus: StatusOpen,
	}
}

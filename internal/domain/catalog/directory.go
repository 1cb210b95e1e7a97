package catalog

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SatelliteFix struct {
	Source   string `json:"source"`
	Accuracy string `json:"accuracy"`
}

type Hospital struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Position         GeoPoint     `json:"position"`
	Address          string       `json:"address"`
	DistanceKm       float64      `json:"distance_km"`
	TravelTimeMin    int          `json:"travel_time_min"`
	AvailableDoctors int          `json:"available_doctors"`
	Specialties      []string     `json:"specialties"`
	WaitTime         string       `json:"wait_time"`
	SatelliteData    SatelliteFix `json:"satellite_data"`
}

type SlotDay struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type Doctor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	HospitalID   string    `json:"hospital_id"`
	HospitalName string    `json:"hospital_name"`
	Rating       float64   `json:"rating"`
	Slots        []SlotDay `json:"slots"`
	Experience   string    `json:"experience"`
	About        string    `json:"about"`
}

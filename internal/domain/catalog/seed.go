package catalog

// Default returns the built-in demo catalog. Zone readings and hospital
// fixes are mocked provenance labels, not live satellite feeds.
func Default() *Catalog {
	return &Catalog{
		Zones:     defaultZones(),
		Quests:    defaultQuests(),
		Hospitals: defaultHospitals(),
		Doctors:   defaultDoctors(),
	}
}

func defaultZones() []RiskZone {
	return []RiskZone{
		{
			ID:          "pollution-1",
			Kind:        ZonePollution,
			Name:        "Smog Zone",
			Description: "High pollution area with reduced visibility and air quality",
			Position:    Position{X: 40, Y: 30},
			HPImpact:    -5,
			Reading: &SourceReading{
				Source:    "Copernicus",
				Reading:   "PM2.5: 85μg/m³ (Unhealthy)",
				Timestamp: "Updated 15 min ago",
			},
		},
		{
			ID:          "heat-1",
			Kind:        ZoneHeat,
			Name:        "Heat Zone",
			Description: "Extreme temperature area with high UV exposure",
			Position:    Position{X: 70, Y: 50},
			HPImpact:    -3,
			Reading: &SourceReading{
				Source:    "Galileo",
				Reading:   "Temperature: 38°C, UV Index: Very High",
				Timestamp: "Updated 5 min ago",
			},
		},
		{
			ID:          "mosquito-1",
			Kind:        ZoneMosquito,
			Name:        "Mosquito Zone",
			Description: "High risk area for mosquito-borne diseases",
			Position:    Position{X: 30, Y: 65},
			HPImpact:    -2,
			Reading: &SourceReading{
				Source:    "EGNOS",
				Reading:   "Standing water detected, humidity: 85%",
				Timestamp: "Updated 30 min ago",
			},
		},
		{
			ID:          "safe-1",
			Kind:        ZoneSafe,
			Name:        "Safe Zone",
			Description: "Protected area with clean air and moderate temperature",
			Position:    Position{X: 20, Y: 20},
			HPImpact:    2,
			Reading: &SourceReading{
				Source:    "Copernicus",
				Reading:   "Air Quality: Good, Temperature: 22°C",
				Timestamp: "Updated 10 min ago",
			},
		},
	}
}

func defaultQuests() []QuestDefinition {
	return []QuestDefinition{
		{
			ID:          1,
			Title:       "Dodge the Smog Monster",
			Description: "Stay out of pollution zones for 2 minutes",
			Lore:        "The Smog Monster weakens lungs with polluted air. It's most active during rush hour and hot afternoons.",
			RewardXP:    50,
			RewardBadge: "Clean Air",
			Difficulty:  DifficultyMedium,
			Kind:        QuestPersonal,
			TimeLeft:    "4 hours",
			RiskAreas:   []string{"Downtown", "Industrial Zone"},
			Objective:   ObjectiveDefinition{Kind: ObjectiveAvoid, Target: ZonePollution, Count: 100},
		},
		{
			ID:          2,
			Title:       "Mosquito-Free Zone",
			Description: "Avoid high-risk areas for mosquito-borne diseases",
			Lore:        "Mosquito swarms carry tiny health debuffs that can stack over time. They're most active at dawn and dusk near standing water.",
			RewardXP:    75,
			RewardBadge: "Bug Slayer",
			Difficulty:  DifficultyHard,
			Kind:        QuestPersonal,
			TimeLeft:    "2 days",
			RiskAreas:   []string{"Park", "Riverside"},
			Objective:   ObjectiveDefinition{Kind: ObjectiveAvoid, Target: ZoneMosquito, Count: 120},
		},
		{
			ID:          3,
			Title:       "Heat Wave Warrior",
			Description: "Stay cool during extreme temperature alerts",
			Lore:        "The Heat Wave Dragon drains HP rapidly when you're exposed. Seek shelter in cool buildings to recover.",
			RewardXP:    40,
			RewardBadge: "Cool Head",
			Difficulty:  DifficultyEasy,
			Kind:        QuestPersonal,
			TimeLeft:    "Today",
			RiskAreas:   []string{"Open Areas", "Concrete Jungle"},
			Objective:   ObjectiveDefinition{Kind: ObjectiveAvoid, Target: ZoneHeat, Count: 80},
		},
		{
			ID:          4,
			Title:       "Clear the City's Air",
			Description: "Join forces with other players to reduce exposure to air pollution",
			Lore:        "When citizens work together, even the mighty Smog Monster retreats. Community action creates lasting change.",
			RewardXP:    100,
			RewardBadge: "City Badge",
			Difficulty:  DifficultyMedium,
			Kind:        QuestCommunity,
			TimeLeft:    "5 days",
			RiskAreas:   []string{"Downtown", "Industrial Zone"},
			Objective:   ObjectiveDefinition{Kind: ObjectiveAvoid, Target: ZonePollution, Count: 500},

			SeedActive:   true,
			SeedCurrent:  225,
			SeedProgress: 45,
		},
	}
}

func defaultHospitals() []Hospital {
	return []Hospital{
		{
			ID:               "hosp-1",
			Name:             "City General Hospital",
			Position:         GeoPoint{Lat: 35.6895, Lng: 139.6917},
			Address:          "123 Main Street, Downtown",
			DistanceKm:       2.3,
			TravelTimeMin:    15,
			AvailableDoctors: 8,
			Specialties:      []string{"General Medicine", "Emergency", "Cardiology", "Pediatrics"},
			WaitTime:         "~25 minutes",
			SatelliteData:    SatelliteFix{Source: "Galileo", Accuracy: "±2m"},
		},
		{
			ID:               "hosp-2",
			Name:             "Riverside Medical Center",
			Position:         GeoPoint{Lat: 35.6935, Lng: 139.7035},
			Address:          "456 River Road, Eastside",
			DistanceKm:       4.1,
			TravelTimeMin:    22,
			AvailableDoctors: 5,
			Specialties:      []string{"General Medicine", "Orthopedics", "Neurology"},
			WaitTime:         "~10 minutes",
			SatelliteData:    SatelliteFix{Source: "EGNOS", Accuracy: "±3m"},
		},
		{
			ID:               "hosp-3",
			Name:             "Westside Health Clinic",
			Position:         GeoPoint{Lat: 35.6845, Lng: 139.6837},
			Address:          "789 West Avenue, Westside",
			DistanceKm:       1.8,
			TravelTimeMin:    12,
			AvailableDoctors: 3,
			Specialties:      []string{"General Medicine", "Dermatology", "Psychology"},
			WaitTime:         "~5 minutes",
			SatelliteData:    SatelliteFix{Source: "Copernicus", Accuracy: "±5m"},
		},
	}
}

func defaultDoctors() []Doctor {
	return []Doctor{
		{
			ID:           "doc-1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "General Medicine",
			HospitalID:   "hosp-1",
			HospitalName: "City General Hospital",
			Rating:       4.8,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"14:30", "15:45", "16:30"}},
				{Date: "Tomorrow", Times: []string{"09:15", "11:00", "14:00", "16:15"}},
			},
			Experience: "12 years",
			About:      "Specializes in preventive care and chronic disease management.",
		},
		{
			ID:           "doc-2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Cardiology",
			HospitalID:   "hosp-1",
			HospitalName: "City General Hospital",
			Rating:       4.9,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"15:00"}},
				{Date: "Tomorrow", Times: []string{"10:30", "13:45", "15:30"}},
			},
			Experience: "15 years",
			About:      "Expert in heart conditions and cardiovascular health.",
		},
		{
			ID:           "doc-3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrics",
			HospitalID:   "hosp-1",
			HospitalName: "City General Hospital",
			Rating:       4.7,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"14:00", "16:00"}},
				{Date: "Tomorrow", Times: []string{"09:00", "10:30", "11:45", "14:30"}},
			},
			Experience: "8 years",
			About:      "Dedicated to children's health and development.",
		},
		{
			ID:           "doc-4",
			Name:         "Dr. James Wilson",
			Specialty:    "Emergency Medicine",
			HospitalID:   "hosp-1",
			HospitalName: "City General Hospital",
			Rating:       4.6,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"13:00", "17:30"}},
				{Date: "Tomorrow", Times: []string{"08:30", "12:15", "16:45"}},
			},
			Experience: "10 years",
			About:      "Experienced in handling all types of medical emergencies.",
		},
		{
			ID:           "doc-5",
			Name:         "Dr. Lisa Park",
			Specialty:    "Dermatology",
			HospitalID:   "hosp-3",
			HospitalName: "Westside Health Clinic",
			Rating:       4.9,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"15:15"}},
				{Date: "Tomorrow", Times: []string{"10:00", "11:30", "14:45"}},
			},
			Experience: "9 years",
			About:      "Specializes in skin conditions and treatments.",
		},
		{
			ID:           "doc-6",
			Name:         "Dr. Robert Taylor",
			Specialty:    "Orthopedics",
			HospitalID:   "hosp-2",
			HospitalName: "Riverside Medical Center",
			Rating:       4.7,
			Slots: []SlotDay{
				{Date: "Today", Times: []string{"14:00", "16:30"}},
				{Date: "Tomorrow", Times: []string{"09:30", "11:15", "15:00"}},
			},
			Experience: "14 years",
			About:      "Expert in bone and joint conditions and sports injuries.",
		},
	}
}

package catalog

// Catalog is the static reference data for one deployment. It is built
// once at startup and never mutated afterwards.
type Catalog struct {
	Zones     []RiskZone
	Quests    []QuestDefinition
	Hospitals []Hospital
	Doctors   []Doctor
}

func (c *Catalog) ZoneByID(id string) *RiskZone {
	for i := range c.Zones {
		if c.Zones[i].ID == id {
			return &c.Zones[i]
		}
	}
	return nil
}

func (c *Catalog) QuestByID(id int) *QuestDefinition {
	for i := range c.Quests {
		if c.Quests[i].ID == id {
			return &c.Quests[i]
		}
	}
	return nil
}

func (c *Catalog) HospitalByID(id string) *Hospital {
	for i := range c.Hospitals {
		if c.Hospitals[i].ID == id {
			return &c.Hospitals[i]
		}
	}
	return nil
}

func (c *Catalog) DoctorByID(id string) *Doctor {
	for i := range c.Doctors {
		if c.Doctors[i].ID == id {
			return &c.Doctors[i]
		}
	}
	return nil
}

// DoctorsByHospital returns the doctors attached to the hospital, in
// catalog order. The result is always non-nil.
func (c *Catalog) DoctorsByHospital(hospitalID string) []Doctor {
	out := make([]Doctor, 0, 4)
	for _, d := range c.Doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

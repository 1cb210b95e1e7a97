package triage

// Tier is the urgency classification produced by an assessment.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// minSymptomsForMedium escalates any combination of three or more
// symptoms to medium even when none is in the medium table.
const minSymptomsForMedium = 3

const (
	recommendationHigh   = "Your symptoms suggest a potentially serious condition that requires immediate medical attention. Please go to the nearest emergency room or call emergency services."
	recommendationMedium = "Your symptoms suggest a condition that may require medical attention. Consider scheduling an appointment with a doctor in the next 24-48 hours."
	recommendationLow    = "Your symptoms suggest a minor condition that can likely be managed at home. Rest, stay hydrated, and monitor your symptoms. If they worsen or persist for more than a few days, consider consulting a doctor."
)

var highUrgencySymptoms = []string{
	"Chest pain",
	"Shortness of breath",
	"Severe headache",
	"Unconsciousness",
	"Seizure",
}

var mediumUrgencySymptoms = []string{
	"Fever",
	"Persistent cough",
	"Abdominal pain",
	"Dizziness",
	"Vomiting",
}

// specialtyRules maps symptom groups to the specialty they suggest.
// Scanned in order; a specialty is suggested once regardless of how many
// of its symptoms are present.
var specialtyRules = []struct {
	Symptoms  []string
	Specialty string
}{
	{Symptoms: []string{"Fever", "Cough", "Sore throat"}, Specialty: "General Medicine"},
	{Symptoms: []string{"Headache", "Dizziness"}, Specialty: "Neurology"},
	{Symptoms: []string{"Chest pain", "Shortness of breath"}, Specialty: "Cardiology"},
	{Symptoms: []string{"Rash", "Skin irritation"}, Specialty: "Dermatology"},
	{Symptoms: []string{"Joint pain", "Back pain"}, Specialty: "Orthopedics"},
}

// CommonSymptoms is the pick list offered for symptom entry.
var CommonSymptoms = []string{
	"Fever", "Headache", "Cough", "Sore throat", "Fatigue",
	"Nausea", "Dizziness", "Shortness of breath", "Chest pain",
	"Abdominal pain", "Rash", "Joint pain", "Back pain",
}

type Result struct {
	Tier           Tier     `json:"tier"`
	Recommendation string   `json:"recommendation"`
	Specialties    []string `json:"specialties"`
}

// Assess maps reported symptom labels to an urgency tier and suggested
// specialties. It is a literal rule table, not a medical model: the first
// matching tier wins, checked high to low. An empty symptom list falls
// through to low so the function stays total.
func Assess(symptoms []string) Result {
	if containsAny(symptoms, highUrgencySymptoms) {
		return Result{
			Tier:           TierHigh,
			Recommendation: recommendationHigh,
			Specialties:    []string{"Emergency Medicine"},
		}
	}

	if containsAny(symptoms, mediumUrgencySymptoms) || len(symptoms) >= minSymptomsForMedium {
		specialties := make([]string, 0, 2)
		for _, rule := range specialtyRules {
			if containsAny(symptoms, rule.Symptoms) {
				specialties = append(specialties, rule.Specialty)
			}
		}
		if len(specialties) == 0 {
			specialties = append(specialties, "General Medicine")
		}
		return Result{
			Tier:           TierMedium,
			Recommendation: recommendationMedium,
			Specialties:    specialties,
		}
	}

	return Result{
		Tier:           TierLow,
		Recommendation: recommendationLow,
		Specialties:    []string{"General Medicine"},
	}
}

func containsAny(symptoms, set []string) bool {
	for _, s := range symptoms {
		for _, candidate := range set {
			if s == candidate {
				return true
			}
		}
	}
	return false
}

package catalog

import (
	"strings"

	"github.com/scamshield/railshield/internal/models"
)

type trainRecord struct {
	Name            string
	Route           string
	Type            string
	PantryAvailable bool
	MealIncluded    bool
	Stops           []string
}

// Major Indian Railway train schedules.
var trainSchedules = map[string]trainRecord{
	"12951": {
		Name:            "Mumbai Rajdhani",
		Route:           "Mumbai Central - New Delhi",
		Type:            "Rajdhani",
		PantryAvailable: true,
		MealIncluded:    true,
		Stops:           []string{"Mumbai Central", "Vadodara", "Ratlam", "Kota", "New Delhi"},
	},
	"12301": {
		Name:            "Kolkata Rajdhani",
		Route:           "Howrah - New Delhi",
		Type:            "Rajdhani",
		PantryAvailable: true,
		MealIncluded:    true,
		Stops:           []string{"Howrah", "Patna", "Mughalsarai", "Kanpur", "New Delhi"},
	},
	"22439": {
		Name:            "Vande Bharat Express",
		Route:           "New Delhi - Varanasi",
		Type:            "Vande Bharat",
		PantryAvailable: true,
		MealIncluded:    true,
		Stops:           []string{"New Delhi", "Kanpur", "Prayagraj", "Varanasi"},
	},
	"12138": {
		Name:            "Punjab Mail",
		Route:           "Mumbai CST - Firozpur",
		Type:            "Mail/Express",
		PantryAvailable: true,
		MealIncluded:    false,
		Stops:           []string{"Mumbai CST", "Surat", "Vadodara", "Ahmedabad", "Firozpur"},
	},
	"12002": {
		Name:            "Bhopal Shatabdi",
		Route:           "New Delhi - Bhopal",
		Type:            "Shatabdi",
		PantryAvailable: true,
		MealIncluded:    true,
		Stops:           []string{"New Delhi", "Agra", "Gwalior", "Bhopal"},
	},
	"12009": {
		Name:            "Shatabdi Express",
		Route:           "Mumbai Central - Ahmedabad",
		Type:            "Shatabdi",
		PantryAvailable: true,
		MealIncluded:    true,
		Stops:           []string{"Mumbai Central", "Surat", "Vadodara", "Ahmedabad"},
	},
	"12626": {
		Name:            "Kerala Express",
		Route:           "New Delhi - Trivandrum",
		Type:            "Mail/Express",
		PantryAvailable: true,
		MealIncluded:    false,
		Stops:           []string{"New Delhi", "Vadodara", "Mumbai", "Goa", "Mangalore", "Trivandrum"},
	},
	"12430": {
		Name:            "Lucknow AC SF",
		Route:           "New Delhi - Lucknow",
		Type:            "Superfast",
		PantryAvailable: true,
		MealIncluded:    false,
		Stops:           []string{"New Delhi", "Ghaziabad", "Moradabad", "Bareilly", "Lucknow"},
	},
}

// LookupTrain resolves a train number against the schedule. Unknown numbers
// yield a placeholder record with Valid=false rather than an error.
func LookupTrain(number string) models.TrainInfo {
	num := strings.TrimSpace(number)
	if rec, ok := trainSchedules[num]; ok {
		pantry := rec.PantryAvailable
		meal := rec.MealIncluded
		return models.TrainInfo{
			Valid:           true,
			Number:          num,
			Name:            rec.Name,
			Route:           rec.Route,
			Type:            rec.Type,
			PantryAvailable: &pantry,
			MealIncluded:    &meal,
			Stops:           rec.Stops,
		}
	}
	return models.TrainInfo{
		Valid:  false,
		Number: num,
		Name:   "Unknown Train",
	}
}

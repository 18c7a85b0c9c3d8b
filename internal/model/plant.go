package model

import "time"

// PlantCategory groups plants by the part that is foraged.
type PlantCategory string

// Plant category constants.
const (
	PlantBerries   PlantCategory = "berries"
	PlantLeaves    PlantCategory = "leaves"
	PlantNuts      PlantCategory = "nuts"
	PlantMushrooms PlantCategory = "mushrooms"
	PlantFlowers   PlantCategory = "flowers"
	PlantRoots     PlantCategory = "roots"
)

// PlantCategories lists every valid plant category in display order.
var PlantCategories = []PlantCategory{PlantBerries, PlantLeaves, PlantNuts, PlantMushrooms, PlantFlowers, PlantRoots}

// ConservationStatus indicates how freely a plant may be harvested.
type ConservationStatus string

// Conservation status constants.
const (
	ConservationCommon    ConservationStatus = "common"
	ConservationUncommon  ConservationStatus = "uncommon"
	ConservationRare      ConservationStatus = "rare"
	ConservationProtected ConservationStatus = "protected"
)

// ConservationStatuses lists every valid conservation status.
var ConservationStatuses = []ConservationStatus{ConservationCommon, ConservationUncommon, ConservationRare, ConservationProtected}

// Months records availability for each calendar month, January first.
type Months [12]bool

// In reports whether the plant is available in month m.
func (m Months) In(month time.Month) bool {
	if month < time.January || month > time.December {
		return false
	}
	return m[month-1]
}

// Set marks availability for month m.
func (m *Months) Set(month time.Month, available bool) {
	if month < time.January || month > time.December {
		return
	}
	m[month-1] = available
}

// Count returns how many months are marked available.
func (m Months) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Identification holds the field marks used to recognise a plant.
type Identification struct {
	KeyFeatures []string `json:"keyFeatures" yaml:"keyFeatures" validate:"min=1"`
	Habitat     []string `json:"habitat" yaml:"habitat"`
	Season      []string `json:"season" yaml:"season"`
	LookAlikes  []string `json:"lookAlikes" yaml:"lookAlikes"`
}

// Edibility describes whether and how a plant can be eaten.
type Edibility struct {
	Safe        bool     `json:"safe" yaml:"safe"`
	Preparation []string `json:"preparation" yaml:"preparation"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
	ToxicParts  []string `json:"toxicParts" yaml:"toxicParts"`
}

// Uses lists what a plant is used for.
type Uses struct {
	Culinary    []string `json:"culinary" yaml:"culinary"`
	Medicinal   []string `json:"medicinal" yaml:"medicinal"`
	Traditional []string `json:"traditional" yaml:"traditional"`
	Recipes     []string `json:"recipes" yaml:"recipes"`
}

// Ethics records harvesting guidance.
type Ethics struct {
	ConservationStatus ConservationStatus `json:"conservationStatus" yaml:"conservationStatus"`
	Guidelines         []string           `json:"guidelines" yaml:"guidelines"`
}

// Plant is one entry in the plant reference database.
type Plant struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	LatinName      string         `json:"latinName" yaml:"latinName"`
	Family         string         `json:"family" yaml:"family"`
	Category       PlantCategory  `json:"category" yaml:"category"`
	Description    string         `json:"description" yaml:"description"`
	HeroImage      string         `json:"heroImage" yaml:"heroImage"`
	Images         []string       `json:"images" yaml:"images"`
	Identification Identification `json:"identification" yaml:"identification"`
	Edibility      Edibility      `json:"edibility" yaml:"edibility"`
	Uses           Uses           `json:"uses" yaml:"uses"`
	Ethics         Ethics         `json:"ethics" yaml:"ethics"`
	Availability   Months         `json:"availability" yaml:"availability"`
}

package domain

// FoodSummary is one row of a food search result, a reduced projection of
// the upstream record. Optional upstream fields stay nil instead of being
// synthesized.
type FoodSummary struct {
	FdcID        int     `json:"fdcId"`
	Description  *string `json:"description"`
	DataType     *string `json:"dataType"`
	BrandOwner   *string `json:"brandOwner"`
	FoodCategory *string `json:"foodCategory"`
}

// NutrientAmount is a single nutrient value with its unit.
type NutrientAmount struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// FoodDetail is a single food record with its nutrient map. The map is
// keyed by lower-cased nutrient name and filtered to a fixed allow-list.
type FoodDetail struct {
	FdcID       int                       `json:"fdcId"`
	Description *string                   `json:"description"`
	DataType    *string                   `json:"dataType"`
	BrandOwner  *string                   `json:"brandOwner"`
	Ingredients *string                   `json:"ingredients"`
	Nutrients   map[string]NutrientAmount `json:"nutrients"`
}

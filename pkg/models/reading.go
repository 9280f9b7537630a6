package models

import "time"

// Reading represents one corrected refractometer reading logged for a batch
type Reading struct {
	ID                int       `json:"id"`
	UUID              string    `json:"uuid"`
	Batch             string    `json:"batch"`
	Unit              string    `json:"unit"` // "sg" or "brix" (input mode)
	OriginalSG        float64   `json:"original_sg"`
	OriginalBrix      float64   `json:"original_brix"`
	FinalSG           float64   `json:"final_sg"`
	FinalBrix         float64   `json:"final_brix"`
	AdjustedFinalSG   float64   `json:"adjusted_final_sg"`
	AdjustedFinalBrix float64   `json:"adjusted_final_brix"`
	ABV               float64   `json:"abv"`
	Attenuation       float64   `json:"attenuation"`
	Calories          float64   `json:"calories"`
	CreatedAt         time.Time `json:"created_at"`
}

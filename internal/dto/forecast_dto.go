package dto

// ForecastRequest asks the demand-forecast collaborator for predicted demand.
// Historical sale rows are derived server-side from the transaction ledger;
// the caller only supplies context and the items of interest.
type ForecastRequest struct {
	Weather string   `json:"weather" validate:"required"`
	Season  string   `json:"season"  validate:"required"`
	Items   []string `json:"items"   validate:"required,min=1,dive,required"`
}

type ForecastRow struct {
	ItemName        string  `json:"item_name"`
	PredictedDemand float64 `json:"predicted_demand"`
	Unit            string  `json:"unit"`
	Justification   string  `json:"justification"`
}

type ForecastResponse struct {
	Rows []ForecastRow `json:"rows"`
}

package language

// UpsertAbilityRequest sets or updates the caller's fluency for one language
type UpsertAbilityRequest struct {
	Fluency string `json:"fluency" validate:"required,fluency"`
}

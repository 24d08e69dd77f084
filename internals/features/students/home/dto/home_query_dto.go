package dto

// StudentHomeQuery is GET /student/home's query string.
// Timezone overrides the token's timezone claim for end-time formatting.
type StudentHomeQuery struct {
	Timezone string `query:"timezone" validate:"omitempty,timezone"`
}

package usecase

type CaptureLeadInput struct {
	Email        string         `json:"email"`
	Name         string         `json:"name,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Company      string         `json:"company,omitempty"`
	AudienceType string         `json:"audience_type"`
	LeadSource   string         `json:"lead_source"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type PropertyForecastInput struct {
	PropertyAddress string `json:"property_address"`
	PropertyType    string `json:"property_type,omitempty"`
	Bedrooms        string `json:"bedrooms,omitempty"`
	Email           string `json:"email"`
}

type SubmitSurveyInput struct {
	Responses map[string]any `json:"responses"`
	Completed bool           `json:"completed"`
	Email     string         `json:"email,omitempty"`
}

type DemoRequestInput struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AudienceType string `json:"audience_type"`
}

type NewsletterInput struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type PropertyUpdatesSurveyInput struct {
	SelectedOptions []string `json:"selectedOptions"`
	AdditionalInfo  string   `json:"additionalInfo,omitempty"`
	FirstName       string   `json:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty"`
	Email           string   `json:"email,omitempty"`
}

type PropertySearchInput struct {
	Address      string `json:"address"`
	PropertyType string `json:"property_type,omitempty"`
	Bedrooms     string `json:"bedrooms,omitempty"`
}

type EmailResultsInput struct {
	Email           string         `json:"email"`
	PropertyAddress string         `json:"property_address"`
	PropertyResults map[string]any `json:"property_results"`
}

// ValuationResults is the demo valuation payload. The camelCase keys are
// what the site widgets read.
type ValuationResults struct {
	CurrentValue     int    `json:"currentValue"`
	OneYearForecast  int    `json:"oneYearForecast"`
	FiveYearForecast int    `json:"fiveYearForecast"`
	Confidence       int    `json:"confidence"`
	OneYearGrowth    string `json:"oneYearGrowth"`
	FiveYearGrowth   string `json:"fiveYearGrowth"`
}

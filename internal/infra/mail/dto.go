package mail

type PropertyReportData struct {
	PropertyAddress  string
	CurrentValue     string
	OneYearForecast  string
	FiveYearForecast string
	Confidence       string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

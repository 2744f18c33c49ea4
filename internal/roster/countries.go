package roster

import "strings"

// countryNames lists the country names accepted as the trailing segment of
// an affiliation's display text. Includes the short forms that actually
// appear in institute addresses (USA, UK, The Netherlands).
var countryNames = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Argentina",
	"Armenia", "Australia", "Austria", "Azerbaijan", "Bahamas", "Bahrain",
	"Bangladesh", "Barbados", "Belarus", "Belgium", "Belize", "Benin",
	"Bhutan", "Bolivia", "Bosnia and Herzegovina", "Botswana", "Brazil",
	"Brunei", "Bulgaria", "Burkina Faso", "Burundi", "Cambodia", "Cameroon",
	"Canada", "Cape Verde", "Chad", "Chile", "China", "Colombia",
	"Costa Rica", "Croatia", "Cuba", "Cyprus", "Czech Republic", "Czechia",
	"Democratic Republic of the Congo", "Denmark", "Djibouti", "Dominica",
	"Dominican Republic", "Ecuador", "Egypt", "El Salvador", "Estonia",
	"Eswatini", "Ethiopia", "Fiji", "Finland", "France", "Gabon", "Gambia",
	"Georgia", "Germany", "Ghana", "Greece", "Greenland", "Grenada",
	"Guatemala", "Guinea", "Guyana", "Haiti", "Honduras", "Hungary",
	"Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel",
	"Italy", "Ivory Coast", "Jamaica", "Japan", "Jordan", "Kazakhstan",
	"Kenya", "Kuwait", "Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho",
	"Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg",
	"Madagascar", "Malawi", "Malaysia", "Maldives", "Mali", "Malta",
	"Mauritania", "Mauritius", "Mexico", "Moldova", "Monaco", "Mongolia",
	"Montenegro", "Morocco", "Mozambique", "Myanmar", "Namibia", "Nepal",
	"Netherlands", "The Netherlands", "New Zealand", "Nicaragua", "Niger",
	"Nigeria", "North Korea", "North Macedonia", "Norway", "Oman",
	"Pakistan", "Panama", "Papua New Guinea", "Paraguay", "Peru",
	"Philippines", "Poland", "Portugal", "Qatar", "Republic of Korea",
	"Romania", "Russia", "Rwanda", "San Marino", "Saudi Arabia", "Senegal",
	"Serbia", "Seychelles", "Sierra Leone", "Singapore", "Slovakia",
	"Slovenia", "Somalia", "South Africa", "South Korea", "South Sudan",
	"Spain", "Sri Lanka", "Sudan", "Suriname", "Sweden", "Switzerland",
	"Syria", "Taiwan", "Tajikistan", "Tanzania", "Thailand", "Togo",
	"Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan", "Uganda",
	"UK", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "United States of America", "Uruguay", "USA",
	"Uzbekistan", "Vatican City", "Venezuela", "Vietnam", "Yemen", "Zambia",
	"Zimbabwe",
}

var countrySet = func() map[string]bool {
	m := make(map[string]bool, len(countryNames))
	for _, name := range countryNames {
		m[strings.ToLower(name)] = true
	}
	return m
}()

// IsCountry reports whether name is a recognized country name.
// Matching is case-insensitive.
func IsCountry(name string) bool {
	return countrySet[strings.ToLower(strings.TrimSpace(name))]
}

package geo

import "smart-routing-service/internal/domain"

// Wilaya is one row of the static reference table: an administrative area,
// a representative coordinate (chef-lieu), and whether the dispatch team
// classifies it as a southern/remote zone.
type Wilaya struct {
	Code     int
	Name     string
	Coords   domain.Coordinates
	Southern bool
}

// DefaultCoordinates is the neutral fallback returned for wilaya names not
// present in the table (Algiers centre). Resolution never fails.
var DefaultCoordinates = domain.Coordinates{Lat: 36.75, Lng: 3.04}

// The 58 wilayas in official code order. Coordinates are approximate
// chef-lieu positions; good enough for inter-wilaya sequencing, not for
// door-level navigation.
var wilayas = []Wilaya{
	{1, "Adrar", domain.Coordinates{Lat: 27.87, Lng: -0.29}, true},
	{2, "Chlef", domain.Coordinates{Lat: 36.17, Lng: 1.33}, false},
	{3, "Laghouat", domain.Coordinates{Lat: 33.80, Lng: 2.88}, true},
	{4, "Oum El Bouaghi", domain.Coordinates{Lat: 35.87, Lng: 7.11}, false},
	{5, "Batna", domain.Coordinates{Lat: 35.56, Lng: 6.17}, false},
	{6, "Béjaïa", domain.Coordinates{Lat: 36.75, Lng: 5.06}, false},
	{7, "Biskra", domain.Coordinates{Lat: 34.85, Lng: 5.73}, true},
	{8, "Béchar", domain.Coordinates{Lat: 31.62, Lng: -2.22}, true},
	{9, "Blida", domain.Coordinates{Lat: 36.47, Lng: 2.83}, false},
	{10, "Bouira", domain.Coordinates{Lat: 36.38, Lng: 3.90}, false},
	{11, "Tamanrasset", domain.Coordinates{Lat: 22.79, Lng: 5.53}, true},
	{12, "Tébessa", domain.Coordinates{Lat: 35.40, Lng: 8.12}, false},
	{13, "Tlemcen", domain.Coordinates{Lat: 34.88, Lng: -1.32}, false},
	{14, "Tiaret", domain.Coordinates{Lat: 35.37, Lng: 1.32}, false},
	{15, "Tizi Ouzou", domain.Coordinates{Lat: 36.72, Lng: 4.05}, false},
	{16, "Alger", domain.Coordinates{Lat: 36.75, Lng: 3.04}, false},
	{17, "Djelfa", domain.Coordinates{Lat: 34.67, Lng: 3.26}, false},
	{18, "Jijel", domain.Coordinates{Lat: 36.82, Lng: 5.77}, false},
	{19, "Sétif", domain.Coordinates{Lat: 36.19, Lng: 5.41}, false},
	{20, "Saïda", domain.Coordinates{Lat: 34.83, Lng: 0.15}, false},
	{21, "Skikda", domain.Coordinates{Lat: 36.88, Lng: 6.91}, false},
	{22, "Sidi Bel Abbès", domain.Coordinates{Lat: 35.19, Lng: -0.64}, false},
	{23, "Annaba", domain.Coordinates{Lat: 36.90, Lng: 7.77}, false},
	{24, "Guelma", domain.Coordinates{Lat: 36.46, Lng: 7.43}, false},
	{25, "Constantine", domain.Coordinates{Lat: 36.37, Lng: 6.61}, false},
	{26, "Médéa", domain.Coordinates{Lat: 36.26, Lng: 2.75}, false},
	{27, "Mostaganem", domain.Coordinates{Lat: 35.93, Lng: 0.09}, false},
	{28, "M'Sila", domain.Coordinates{Lat: 35.71, Lng: 4.54}, false},
	{29, "Mascara", domain.Coordinates{Lat: 35.40, Lng: 0.14}, false},
	{30, "Ouargla", domain.Coordinates{Lat: 31.95, Lng: 5.33}, true},
	{31, "Oran", domain.Coordinates{Lat: 35.70, Lng: -0.65}, false},
	{32, "El Bayadh", domain.Coordinates{Lat: 33.68, Lng: 1.02}, true},
	{33, "Illizi", domain.Coordinates{Lat: 26.48, Lng: 8.47}, true},
	{34, "Bordj Bou Arréridj", domain.Coordinates{Lat: 36.07, Lng: 4.76}, false},
	{35, "Boumerdès", domain.Coordinates{Lat: 36.77, Lng: 3.48}, false},
	{36, "El Tarf", domain.Coordinates{Lat: 36.77, Lng: 8.31}, false},
	{37, "Tindouf", domain.Coordinates{Lat: 27.67, Lng: -8.15}, true},
	{38, "Tissemsilt", domain.Coordinates{Lat: 35.61, Lng: 1.81}, false},
	{39, "El Oued", domain.Coordinates{Lat: 33.37, Lng: 6.86}, true},
	{40, "Khenchela", domain.Coordinates{Lat: 35.44, Lng: 7.14}, false},
	{41, "Souk Ahras", domain.Coordinates{Lat: 36.29, Lng: 7.95}, false},
	{42, "Tipaza", domain.Coordinates{Lat: 36.59, Lng: 2.44}, false},
	{43, "Mila", domain.Coordinates{Lat: 36.45, Lng: 6.26}, false},
	{44, "Aïn Defla", domain.Coordinates{Lat: 36.26, Lng: 1.97}, false},
	{45, "Naâma", domain.Coordinates{Lat: 33.27, Lng: -0.31}, true},
	{46, "Aïn Témouchent", domain.Coordinates{Lat: 35.30, Lng: -1.14}, false},
	{47, "Ghardaïa", domain.Coordinates{Lat: 32.49, Lng: 3.67}, true},
	{48, "Relizane", domain.Coordinates{Lat: 35.74, Lng: 0.56}, false},
	{49, "Timimoun", domain.Coordinates{Lat: 29.26, Lng: 0.23}, true},
	{50, "Bordj Badji Mokhtar", domain.Coordinates{Lat: 21.33, Lng: 0.95}, true},
	{51, "Ouled Djellal", domain.Coordinates{Lat: 34.42, Lng: 5.06}, true},
	{52, "Béni Abbès", domain.Coordinates{Lat: 30.13, Lng: -2.17}, true},
	{53, "In Salah", domain.Coordinates{Lat: 27.19, Lng: 2.48}, true},
	{54, "In Guezzam", domain.Coordinates{Lat: 19.57, Lng: 5.77}, true},
	{55, "Touggourt", domain.Coordinates{Lat: 33.10, Lng: 6.06}, true},
	{56, "Djanet", domain.Coordinates{Lat: 24.55, Lng: 9.48}, true},
	{57, "El M'Ghair", domain.Coordinates{Lat: 33.95, Lng: 5.92}, true},
	{58, "El Meniaa", domain.Coordinates{Lat: 30.58, Lng: 2.88}, true},
}

// Alternate spellings accepted by lookup. Matching stays exact and
// case/diacritic-sensitive: each alias is its own table entry pointing at
// the canonical row, no fuzzy matching.
var aliases = map[string]string{
	"Algiers":            "Alger",
	"Bejaia":             "Béjaïa",
	"Bechar":             "Béchar",
	"Tebessa":            "Tébessa",
	"Setif":              "Sétif",
	"Saida":              "Saïda",
	"Sidi Bel Abbes":     "Sidi Bel Abbès",
	"Medea":              "Médéa",
	"Msila":              "M'Sila",
	"Bordj Bou Arreridj": "Bordj Bou Arréridj",
	"Boumerdes":          "Boumerdès",
	"Ain Defla":          "Aïn Defla",
	"Naama":              "Naâma",
	"Ain Temouchent":     "Aïn Témouchent",
	"Ghardaia":           "Ghardaïa",
	"Beni Abbes":         "Béni Abbès",
	"El Mghair":          "El M'Ghair",
	"Tamenrasset":        "Tamanrasset",
}

var byName = buildIndex()

func buildIndex() map[string]domain.Coordinates {
	idx := make(map[string]domain.Coordinates, len(wilayas)+len(aliases))
	for _, w := range wilayas {
		idx[w.Name] = w.Coords
	}
	for alias, canonical := range aliases {
		if c, ok := idx[canonical]; ok {
			idx[alias] = c
		}
	}
	return idx
}

// Resolve returns the representative coordinates for the named wilaya, or
// DefaultCoordinates when the name is unknown. It never fails.
func Resolve(name string) domain.Coordinates {
	if c, ok := byName[name]; ok {
		return c
	}
	return DefaultCoordinates
}

// Lookup returns the coordinates for the named wilaya and whether the name
// (canonical or alias) exists in the table.
func Lookup(name string) (domain.Coordinates, bool) {
	c, ok := byName[name]
	return c, ok
}

// All returns a copy of the canonical table in official code order.
// Aliases are not listed.
func All() []Wilaya {
	out := make([]Wilaya, len(wilayas))
	copy(out, wilayas)
	return out
}

// IsSouthern reports whether the named wilaya belongs to the fixed
// southern/remote set. Unknown names are not southern.
func IsSouthern(name string) bool {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, w := range wilayas {
		if w.Name == name {
			return w.Southern
		}
	}
	return false
}

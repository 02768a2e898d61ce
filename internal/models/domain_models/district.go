package domain_models

// District is one of the communes of Abidjan a trip can start, end or pass through.
type District string

const (
	Abobo       District = "Abobo"
	Adjame      District = "Adjamé"
	Anyama      District = "Anyama"
	Attecoube   District = "Attécoubé"
	Bingerville District = "Bingerville"
	Cocody      District = "Cocody"
	Koumassi    District = "Koumassi"
	Marcory     District = "Marcory"
	Plateau     District = "Plateau"
	PortBouet   District = "Port-Bouët"
	Treichville District = "Treichville"
	Yopougon    District = "Yopougon"
	Songon      District = "Songon"
)

// Districts lists every district in display order.
var Districts = []District{
	Abobo, Adjame, Anyama, Attecoube, Bingerville, Cocody, Koumassi,
	Marcory, Plateau, PortBouet, Treichville, Yopougon, Songon,
}

var districtSet = func() map[District]struct{} {
	m := make(map[District]struct{}, len(Districts))
	for _, d := range Districts {
		m[d] = struct{}{}
	}
	return m
}()

func IsDistrict(v string) bool {
	_, ok := districtSet[District(v)]
	return ok
}

// ParseDistrict returns the district with exactly the given name.
func ParseDistrict(v string) (District, bool) {
	if !IsDistrict(v) {
		return "", false
	}
	return District(v), true
}

func (d District) String() string { return string(d) }

package game

import (
	"fmt"
	"sort"
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Biting Frost":                   BitingFrost,
	"Impenetrable Fog":               ImpenetrableFog,
	"Torrential Rain":                TorrentialRain,
	"Clear Weather":                  ClearWeather,
	"Geralt of Rivia":                GeraltOfRivia,
	"Cirilla Fiona Elen Riannon":     CirillaFionaElenRiannon,
	"Yennefer of Vengerberg":         YenneferOfVengerberg,
	"Philippa Eilhart":               PhilippaEilhart,
	"Vernon Roche":                   VernonRoche,
	"Blue Stripes Commando":          BlueStripesCommando,
	"Crinfrid Reavers Dragon Hunter": CrinfridReaversHunter,
	"Catapult":                       CatapultCrew,
	"Kaedweni Siege Expert":          KaedweniSiegeExpert,
	"Dandelion":                      DandelionBard,
	"Prince Stennis":                 PrinceStennis,
	"Sigismund Dijkstra":             SigismundDijkstra,
	"Thaler":                         Thaler,
	"Poor Infantry":                  PoorInfantry,
	"Redanian Foot Soldier":          RedanianFootSoldier,
	"Ves":                            Ves,
	"Siegfried of Denesle":           SiegfriedOfDenesle,
	"Keira Metz":                     KeiraMetz,
	"Sile de Tansarville":            SileDeTansarville,
	"Sabrina Glevissig":              SabrinaGlevissig,
	"Dethmold":                       DethmoldBattleMage,
	"Ballista":                       Ballista,
	"Siege Tower":                    SiegeTower,
	"Trebuchet":                      Trebuchet,
}

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}

// CardNames returns every registered card name in sorted order.
func CardNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

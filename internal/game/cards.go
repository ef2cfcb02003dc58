package game

// Card constructors. Each call returns a fresh definition.

func unit(name string, row CardType, power int, ability AbilityKind, flavor string) *Card {
	return &Card{
		Name:     name,
		Flavor:   flavor,
		Image:    imagePath(name),
		CardType: row,
		Power:    power,
		Ability:  ability,
	}
}

func weather(name string, ability AbilityKind, flavor string) *Card {
	return &Card{
		Name:     name,
		Flavor:   flavor,
		Image:    imagePath(name),
		CardType: CardTypeWeather,
		Ability:  ability,
	}
}

// imagePath derives the art file name from the card name.
func imagePath(name string) string {
	b := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b = append(b, c+('a'-'A'))
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b = append(b, c)
		case c == ' ' || c == '-':
			if len(b) > 0 && b[len(b)-1] != '_' {
				b = append(b, '_')
			}
		}
	}
	return string(b) + ".png"
}

// --- Weather ---

func BitingFrost() *Card {
	return weather("Biting Frost", AbilityFrost, "Bitter cold seeps into the front line.")
}

func ImpenetrableFog() *Card {
	return weather("Impenetrable Fog", AbilityFog, "Archers cannot hit what they cannot see.")
}

func TorrentialRain() *Card {
	return weather("Torrential Rain", AbilityRain, "Mud swallows the siege engines.")
}

func ClearWeather() *Card {
	return weather("Clear Weather", AbilityClearWeather, "The clouds part over the battlefield.")
}

// --- Heroes ---

func GeraltOfRivia() *Card {
	return unit("Geralt of Rivia", CardTypeMelee, 15, AbilityHero, "If that's what it takes to save the world, it's better to let that world die.")
}

func CirillaFionaElenRiannon() *Card {
	return unit("Cirilla Fiona Elen Riannon", CardTypeMelee, 15, AbilityHero, "Know when fairy tales cease to be tales?")
}

func YenneferOfVengerberg() *Card {
	return unit("Yennefer of Vengerberg", CardTypeRange, 7, AbilityHero, "Magic is Chaos, Art and Science.")
}

func PhilippaEilhart() *Card {
	return unit("Philippa Eilhart", CardTypeRange, 10, AbilityHero, "Kings rule. Sorceresses govern.")
}

func VernonRoche() *Card {
	return unit("Vernon Roche", CardTypeMelee, 10, AbilityHero, "A commander of the Blue Stripes.")
}

// --- Bond ---

func BlueStripesCommando() *Card {
	return unit("Blue Stripes Commando", CardTypeMelee, 4, AbilityBond, "Temeria's finest, loyal to the end.")
}

func CrinfridReaversHunter() *Card {
	return unit("Crinfrid Reavers Dragon Hunter", CardTypeRange, 5, AbilityBond, "Dragons? We'll handle it, for a price.")
}

func CatapultCrew() *Card {
	return unit("Catapult", CardTypeSiege, 8, AbilityBond, "Heave!")
}

// --- Morale ---

func KaedweniSiegeExpert() *Card {
	return unit("Kaedweni Siege Expert", CardTypeSiege, 1, AbilityMorale, "Aim higher.")
}

func DandelionBard() *Card {
	return unit("Dandelion", CardTypeMelee, 2, AbilityMorale, "The finest poet of the age.")
}

// --- Spies ---

func PrinceStennis() *Card {
	return unit("Prince Stennis", CardTypeMelee, 5, AbilitySpy, "Coin buys loyalty, until it runs out.")
}

func SigismundDijkstra() *Card {
	return unit("Sigismund Dijkstra", CardTypeMelee, 4, AbilitySpy, "Redania's spymaster knows everything worth knowing.")
}

func Thaler() *Card {
	return unit("Thaler", CardTypeSiege, 1, AbilitySpy, "Nobody pays attention to a beggar.")
}

// --- Plain units ---

func PoorInfantry() *Card {
	return unit("Poor Infantry", CardTypeMelee, 1, AbilityEmpty, "Sent first, paid last.")
}

func RedanianFootSoldier() *Card {
	return unit("Redanian Foot Soldier", CardTypeMelee, 1, AbilityEmpty, "Marches where he's told.")
}

func Ves() *Card {
	return unit("Ves", CardTypeMelee, 5, AbilityEmpty, "Quick with a blade.")
}

func SiegfriedOfDenesle() *Card {
	return unit("Siegfried of Denesle", CardTypeMelee, 5, AbilityEmpty, "Order of the Flaming Rose.")
}

func KeiraMetz() *Card {
	return unit("Keira Metz", CardTypeRange, 5, AbilityEmpty, "Sorceress of the Lodge.")
}

func SileDeTansarville() *Card {
	return unit("Sile de Tansarville", CardTypeRange, 5, AbilityEmpty, "Sorceress of the Lodge.")
}

func SabrinaGlevissig() *Card {
	return unit("Sabrina Glevissig", CardTypeRange, 4, AbilityEmpty, "Daughter of Kaedwen.")
}

func DethmoldBattleMage() *Card {
	return unit("Dethmold", CardTypeRange, 6, AbilityEmpty, "Court mage of Kaedwen.")
}

func Ballista() *Card {
	return unit("Ballista", CardTypeSiege, 6, AbilityEmpty, "Bolts the size of a man.")
}

func SiegeTower() *Card {
	return unit("Siege Tower", CardTypeSiege, 6, AbilityEmpty, "Over the walls, lads.")
}

func Trebuchet() *Card {
	return unit("Trebuchet", CardTypeSiege, 6, AbilityEmpty, "Range beats courage.")
}

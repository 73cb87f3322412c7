package types

import "slices"

// Classes lists the playable classes in the order forms offer them.
var Classes = []string{
	"Warrior",
	"Paladin",
	"Hunter",
	"Rogue",
	"Priest",
	"Death Knight",
	"Shaman",
	"Mage",
	"Warlock",
	"Monk",
	"Druid",
	"Demon Hunter",
	"Evoker",
}

var classColors = map[string]string{
	"Warrior":      "#C79C6E",
	"Paladin":      "#F58CBA",
	"Hunter":       "#ABD473",
	"Rogue":        "#FFF569",
	"Priest":       "#FFE4FD",
	"Death Knight": "#C41F3B",
	"Shaman":       "#0070DE",
	"Mage":         "#69CCF0",
	"Warlock":      "#9482C9",
	"Monk":         "#00FF96",
	"Druid":        "#FF7D0A",
	"Demon Hunter": "#A330C9",
	"Evoker":       "#33937F",
}

// NeutralColor is used for unknown classes.
const NeutralColor = "#9CA3AF"

// ClassColor returns the in-game color of class.
func ClassColor(class string) string {
	if c, ok := classColors[class]; ok {
		return c
	}
	return NeutralColor
}

// IsClass reports whether class is one of Classes.
func IsClass(class string) bool {
	return slices.Contains(Classes, class)
}
